package menu

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("menu item not found")

type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, organizationID, id string) (*Item, error)
	ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Item, error)
	// ListActiveByRecipe returns the active items whose recipe_id matches,
	// used by impact analysis.
	ListActiveByRecipe(ctx context.Context, organizationID, recipeID string) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	UpdatePrice(ctx context.Context, organizationID, id string, price float64) error
	Delete(ctx context.Context, organizationID, id string) error
}
