package recipe

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	recipes map[string]*Recipe
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{recipes: make(map[string]*Recipe)}
}

func cloneRecipe(r *Recipe) *Recipe {
	clone := *r
	clone.Lines = append([]Line(nil), r.Lines...)
	return &clone
}

func (repo *InMemoryRepository) Create(ctx context.Context, r *Recipe) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now

	repo.recipes[r.ID] = cloneRecipe(r)
	return nil
}

func (repo *InMemoryRepository) GetByID(ctx context.Context, organizationID, id string) (*Recipe, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	r, ok := repo.recipes[id]
	if !ok || r.OrganizationID != organizationID {
		return nil, ErrNotFound
	}
	return cloneRecipe(r), nil
}

func (repo *InMemoryRepository) ListByOrganization(ctx context.Context, organizationID string, activeOnly bool) ([]Recipe, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var out []Recipe
	for _, r := range repo.recipes {
		if r.OrganizationID != organizationID {
			continue
		}
		if activeOnly && !r.IsActive {
			continue
		}
		out = append(out, *cloneRecipe(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (repo *InMemoryRepository) Update(ctx context.Context, r *Recipe) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.recipes[r.ID]
	if !ok || existing.OrganizationID != r.OrganizationID {
		return ErrNotFound
	}
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now()

	repo.recipes[r.ID] = cloneRecipe(r)
	return nil
}

func (repo *InMemoryRepository) UpdateLines(ctx context.Context, organizationID, id string, lines []Line) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.recipes[id]
	if !ok || existing.OrganizationID != organizationID {
		return ErrNotFound
	}
	existing.Lines = append([]Line(nil), lines...)
	existing.UpdatedAt = time.Now()
	return nil
}

func (repo *InMemoryRepository) Delete(ctx context.Context, organizationID, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.recipes[id]
	if !ok || existing.OrganizationID != organizationID {
		return ErrNotFound
	}
	delete(repo.recipes, id)
	return nil
}
