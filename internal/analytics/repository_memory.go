package analytics

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	nextID    int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{snapshots: make(map[string]*Snapshot)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, s Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.snapshots[s.OrganizationID]; ok {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		s.ID = r.nextID
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	r.snapshots[s.OrganizationID] = &s
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, organizationID string) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.snapshots[organizationID]
	if !ok {
		return nil, ErrNoSnapshot
	}
	clone := *s
	return &clone, nil
}
