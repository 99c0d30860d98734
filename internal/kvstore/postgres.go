package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps values in the kv_store table so user preferences and
// recipe version history survive restarts.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, namespace, key string, dest interface{}) (bool, error) {
	var data []byte

	err := s.db.QueryRow(ctx, `
		SELECT value
		FROM kv_store
		WHERE namespace = $1 AND key = $2
	`, namespace, key).Scan(&data)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, json.Unmarshal(data, dest)
}

func (s *PostgresStore) GetFresh(ctx context.Context, namespace, key string, maxAge time.Duration, dest interface{}) (bool, error) {
	var (
		data      []byte
		updatedAt time.Time
	)

	err := s.db.QueryRow(ctx, `
		SELECT value, updated_at
		FROM kv_store
		WHERE namespace = $1 AND key = $2
	`, namespace, key).Scan(&data, &updatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if IsStale(updatedAt, maxAge, time.Now()) {
		_ = s.Delete(ctx, namespace, key)
		return false, nil
	}

	return true, json.Unmarshal(data, dest)
}

func (s *PostgresStore) Set(ctx context.Context, namespace, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO kv_store (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = $3, updated_at = now()
	`, namespace, key, data)

	return err
}

func (s *PostgresStore) Delete(ctx context.Context, namespace, key string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM kv_store
		WHERE namespace = $1 AND key = $2
	`, namespace, key)
	return err
}
