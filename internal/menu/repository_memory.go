package menu

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Item

	// FailPriceUpdateFor makes UpdatePrice fail for the given item ids,
	// used to exercise partial batch failure.
	FailPriceUpdateFor map[string]bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:              make(map[string]*Item),
		FailPriceUpdateFor: make(map[string]bool),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, organizationID, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok || item.OrganizationID != organizationID {
		return nil, ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *InMemoryRepository) ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Item
	for _, item := range r.items {
		if item.OrganizationID != organizationID {
			continue
		}
		if activeOnly && !item.IsActive {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) ListActiveByRecipe(ctx context.Context, organizationID, recipeID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Item
	for _, item := range r.items {
		if item.OrganizationID != organizationID || !item.IsActive {
			continue
		}
		if item.RecipeID == nil || *item.RecipeID != recipeID {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok || existing.OrganizationID != item.OrganizationID {
		return ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()

	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *InMemoryRepository) UpdatePrice(ctx context.Context, organizationID, id string, price float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailPriceUpdateFor[id] {
		return errors.New("simulated price update failure")
	}

	existing, ok := r.items[id]
	if !ok || existing.OrganizationID != organizationID {
		return ErrNotFound
	}
	existing.SellingPrice = price
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, organizationID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok || existing.OrganizationID != organizationID {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
