package ingredient

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Ingredient
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*Ingredient)}
}

func (r *InMemoryRepository) Create(ctx context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	now := time.Now()
	ing.CreatedAt = now
	ing.UpdatedAt = now

	clone := *ing
	r.items[ing.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, organizationID, id string) (*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.items[id]
	if !ok || ing.OrganizationID != organizationID {
		return nil, ErrNotFound
	}
	clone := *ing
	return &clone, nil
}

func (r *InMemoryRepository) ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Ingredient
	for _, ing := range r.items {
		if ing.OrganizationID != organizationID {
			continue
		}
		if activeOnly && !ing.IsActive {
			continue
		}
		out = append(out, *ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[ing.ID]
	if !ok || existing.OrganizationID != ing.OrganizationID {
		return ErrNotFound
	}
	ing.CreatedAt = existing.CreatedAt
	ing.UpdatedAt = time.Now()
	// Costing unit is fixed at creation.
	ing.Unit = existing.Unit

	clone := *ing
	r.items[ing.ID] = &clone
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
