package modules

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Enabled(ctx context.Context, organizationID string) ([]Module, error) {
	rows, err := r.db.Query(ctx, `
		SELECT module
		FROM organization_modules
		WHERE organization_id = $1
		ORDER BY module
	`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enabled []Module
	for rows.Next() {
		var m Module
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		enabled = append(enabled, m)
	}
	return enabled, rows.Err()
}

func (r *PostgresRepository) Enable(ctx context.Context, organizationID string, m Module) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO organization_modules (organization_id, module)
		VALUES ($1, $2)
		ON CONFLICT (organization_id, module) DO NOTHING
	`, organizationID, m)
	return err
}

func (r *PostgresRepository) Disable(ctx context.Context, organizationID string, m Module) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM organization_modules
		WHERE organization_id = $1 AND module = $2
	`, organizationID, m)
	return err
}
