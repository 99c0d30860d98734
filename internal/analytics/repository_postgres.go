package analytics

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, s Snapshot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO margin_snapshots (
			organization_id,
			avg_margin_pct,
			median_margin_pct,
			item_count,
			excellent_count,
			good_count,
			warning_count,
			danger_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (organization_id)
		DO UPDATE SET
			avg_margin_pct = EXCLUDED.avg_margin_pct,
			median_margin_pct = EXCLUDED.median_margin_pct,
			item_count = EXCLUDED.item_count,
			excellent_count = EXCLUDED.excellent_count,
			good_count = EXCLUDED.good_count,
			warning_count = EXCLUDED.warning_count,
			danger_count = EXCLUDED.danger_count,
			updated_at = now()
	`,
		s.OrganizationID,
		s.AvgMarginPct,
		s.MedianMarginPct,
		s.ItemCount,
		s.ExcellentCount,
		s.GoodCount,
		s.WarningCount,
		s.DangerCount,
	)

	return err
}

func (r *PostgresRepository) Get(ctx context.Context, organizationID string) (*Snapshot, error) {
	var s Snapshot
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			organization_id,
			avg_margin_pct,
			median_margin_pct,
			item_count,
			excellent_count,
			good_count,
			warning_count,
			danger_count,
			created_at,
			updated_at
		FROM margin_snapshots
		WHERE organization_id = $1
	`, organizationID).Scan(
		&s.ID,
		&s.OrganizationID,
		&s.AvgMarginPct,
		&s.MedianMarginPct,
		&s.ItemCount,
		&s.ExcellentCount,
		&s.GoodCount,
		&s.WarningCount,
		&s.DangerCount,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}

	return &s, nil
}
