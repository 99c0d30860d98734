package recipe

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

func (r *PostgresRepository) Create(ctx context.Context, rec *Recipe) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (id, organization_id, name, servings, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, rec.ID, rec.OrganizationID, rec.Name, rec.Servings, rec.IsActive).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertLines(ctx, tx, rec.ID, rec.Lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertLines(ctx context.Context, tx pgx.Tx, recipeID string, lines []Line) error {
	for i, line := range lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit, position)
			VALUES ($1, $2, $3, $4, $5)
		`, recipeID, line.IngredientID, line.Quantity, line.Unit, i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, organizationID, id string) (*Recipe, error) {
	rec := &Recipe{}

	err := r.db.QueryRow(ctx, `
		SELECT id, organization_id, name, servings, is_active, created_at, updated_at
		FROM recipes
		WHERE organization_id = $1 AND id = $2
	`, organizationID, id).Scan(
		&rec.ID, &rec.OrganizationID, &rec.Name, &rec.Servings,
		&rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lines, err := r.loadLines(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Lines = lines

	return rec, nil
}

func (r *PostgresRepository) loadLines(ctx context.Context, recipeID string) ([]Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ingredient_id, quantity, unit
		FROM recipe_ingredients
		WHERE recipe_id = $1
		ORDER BY position
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.IngredientID, &line.Quantity, &line.Unit); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Recipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, organization_id, name, servings, is_active, created_at, updated_at
		FROM recipes
		WHERE organization_id = $1
		  AND ($2 = false OR is_active)
		ORDER BY name
	`, organizationID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recipe
	for rows.Next() {
		var rec Recipe
		if err := rows.Scan(
			&rec.ID, &rec.OrganizationID, &rec.Name, &rec.Servings,
			&rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		lines, err := r.loadLines(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Lines = lines
	}

	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, rec *Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
		UPDATE recipes
		SET name = $3,
		    servings = $4,
		    is_active = $5,
		    updated_at = now()
		WHERE organization_id = $1 AND id = $2
	`, rec.OrganizationID, rec.ID, rec.Name, rec.Servings, rec.IsActive)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM recipe_ingredients WHERE recipe_id = $1
	`, rec.ID); err != nil {
		return err
	}
	if err := insertLines(ctx, tx, rec.ID, rec.Lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) UpdateLines(ctx context.Context, organizationID, id string, lines []Line) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
		UPDATE recipes
		SET updated_at = now()
		WHERE organization_id = $1 AND id = $2
	`, organizationID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM recipe_ingredients WHERE recipe_id = $1
	`, id); err != nil {
		return err
	}
	if err := insertLines(ctx, tx, id, lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Delete(ctx context.Context, organizationID, id string) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM recipes
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
