package analytics

import (
	"context"
	"errors"
)

var ErrNoSnapshot = errors.New("no snapshot available")

type Repository interface {
	Upsert(ctx context.Context, s Snapshot) error
	Get(ctx context.Context, organizationID string) (*Snapshot, error)
}
