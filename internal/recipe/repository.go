package recipe

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("recipe not found")

type Repository interface {
	Create(ctx context.Context, r *Recipe) error
	GetByID(ctx context.Context, organizationID, id string) (*Recipe, error)
	ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Recipe, error)
	Update(ctx context.Context, r *Recipe) error
	// UpdateLines replaces only the ingredient lines, used by batch recipe
	// updates from impact analysis.
	UpdateLines(ctx context.Context, organizationID, id string, lines []Line) error
	Delete(ctx context.Context, organizationID, id string) error
}
