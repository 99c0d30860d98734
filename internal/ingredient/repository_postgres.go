package ingredient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ing *Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO ingredients (
			id, organization_id, name, category, unit,
			cost_per_unit, supplier, notes, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`,
		ing.ID, ing.OrganizationID, ing.Name, ing.Category, ing.Unit,
		ing.CostPerUnit, ing.Supplier, ing.Notes, ing.IsActive,
	).Scan(&ing.CreatedAt, &ing.UpdatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, organizationID, id string) (*Ingredient, error) {
	ing := &Ingredient{}

	err := r.db.QueryRow(ctx, `
		SELECT id, organization_id, name, category, unit,
		       cost_per_unit, supplier, notes, is_active,
		       created_at, updated_at
		FROM ingredients
		WHERE organization_id = $1 AND id = $2
	`, organizationID, id).Scan(
		&ing.ID, &ing.OrganizationID, &ing.Name, &ing.Category, &ing.Unit,
		&ing.CostPerUnit, &ing.Supplier, &ing.Notes, &ing.IsActive,
		&ing.CreatedAt, &ing.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return ing, nil
}

func (r *PostgresRepository) ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, organization_id, name, category, unit,
		       cost_per_unit, supplier, notes, is_active,
		       created_at, updated_at
		FROM ingredients
		WHERE organization_id = $1
		  AND ($2 = false OR is_active)
		ORDER BY name
	`, organizationID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ingredient
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(
			&ing.ID, &ing.OrganizationID, &ing.Name, &ing.Category, &ing.Unit,
			&ing.CostPerUnit, &ing.Supplier, &ing.Notes, &ing.IsActive,
			&ing.CreatedAt, &ing.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ing)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, ing *Ingredient) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET name = $3,
		    category = $4,
		    cost_per_unit = $5,
		    supplier = $6,
		    notes = $7,
		    is_active = $8,
		    updated_at = now()
		WHERE organization_id = $1 AND id = $2
	`,
		ing.OrganizationID, ing.ID,
		ing.Name, ing.Category, ing.CostPerUnit,
		ing.Supplier, ing.Notes, ing.IsActive,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, organizationID, id string) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM ingredients
		WHERE organization_id = $1 AND id = $2
	`, organizationID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
