package modules

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	enabled map[string]map[Module]bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{enabled: make(map[string]map[Module]bool)}
}

func (r *InMemoryRepository) Enabled(ctx context.Context, organizationID string) ([]Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Module
	for m := range r.enabled[organizationID] {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *InMemoryRepository) Enable(ctx context.Context, organizationID string, m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.enabled[organizationID] == nil {
		r.enabled[organizationID] = make(map[Module]bool)
	}
	r.enabled[organizationID][m] = true
	return nil
}

func (r *InMemoryRepository) Disable(ctx context.Context, organizationID string, m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.enabled[organizationID], m)
	return nil
}
