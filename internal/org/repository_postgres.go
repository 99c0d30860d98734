package org

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

func (r *PostgresRepository) Create(ctx context.Context, o *Organization) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.OnboardingStatus == "" {
		o.OnboardingStatus = OnboardingNotStarted
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO organizations (id, name, org_number, onboarding_status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, o.ID, o.Name, o.OrgNumber, o.OnboardingStatus).Scan(&o.CreatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Organization, error) {
	o := &Organization{}

	err := r.db.QueryRow(ctx, `
		SELECT id, name, org_number, onboarding_status, created_at
		FROM organizations
		WHERE id = $1
	`, id).Scan(&o.ID, &o.Name, &o.OrgNumber, &o.OnboardingStatus, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) UpdateOnboardingStatus(ctx context.Context, id string, status OnboardingStatus) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE organizations
		SET onboarding_status = $2
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
