package menu

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

const itemColumns = `
	id, organization_id, name, category, selling_price, recipe_id,
	target_food_cost_percentage, vat_rate, vat_mode, image_url, is_active,
	created_at, updated_at
`

func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID, &item.OrganizationID, &item.Name, &item.Category,
		&item.SellingPrice, &item.RecipeID, &item.TargetFoodCostPct,
		&item.VATRate, &item.VATMode, &item.ImageURL, &item.IsActive,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			id, organization_id, name, category, selling_price, recipe_id,
			target_food_cost_percentage, vat_rate, vat_mode, image_url, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`,
		item.ID, item.OrganizationID, item.Name, item.Category,
		item.SellingPrice, item.RecipeID, item.TargetFoodCostPct,
		item.VATRate, item.VATMode, item.ImageURL, item.IsActive,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, organizationID, id string) (*Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE organization_id = $1 AND id = $2
	`, organizationID, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE organization_id = $1
		  AND ($2 = false OR is_active)
		ORDER BY category, name
	`, organizationID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *PostgresRepository) ListActiveByRecipe(ctx context.Context, organizationID, recipeID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE organization_id = $1
		  AND recipe_id = $2
		  AND is_active
		ORDER BY name
	`, organizationID, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]Item, error) {
	var out []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, item *Item) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $3,
		    category = $4,
		    selling_price = $5,
		    recipe_id = $6,
		    target_food_cost_percentage = $7,
		    vat_rate = $8,
		    vat_mode = $9,
		    image_url = $10,
		    is_active = $11,
		    updated_at = now()
		WHERE organization_id = $1 AND id = $2
	`,
		item.OrganizationID, item.ID,
		item.Name, item.Category, item.SellingPrice, item.RecipeID,
		item.TargetFoodCostPct, item.VATRate, item.VATMode,
		item.ImageURL, item.IsActive,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdatePrice(ctx context.Context, organizationID, id string, price float64) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET selling_price = $3,
		    updated_at = now()
		WHERE organization_id = $1 AND id = $2
	`, organizationID, id, price)
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
		DELETE FROM menu_items
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
