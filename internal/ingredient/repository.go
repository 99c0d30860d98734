package ingredient

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("ingredient not found")

// Repository is the data-access contract. Service depends only on this
// interface.
type Repository interface {
	Create(ctx context.Context, ing *Ingredient) error
	GetByID(ctx context.Context, organizationID, id string) (*Ingredient, error)
	ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Ingredient, error)
	Update(ctx context.Context, ing *Ingredient) error
	Delete(ctx context.Context, organizationID, id string) error
}
