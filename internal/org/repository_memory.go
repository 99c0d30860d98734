package org

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.RWMutex
	orgs map[string]*Organization

	// FailGets makes reads fail, for exercising the unknown-status path.
	FailGets bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orgs: make(map[string]*Organization)}
}

func (r *InMemoryRepository) Create(ctx context.Context, o *Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.OnboardingStatus == "" {
		o.OnboardingStatus = OnboardingNotStarted
	}
	o.CreatedAt = time.Now()

	clone := *o
	r.orgs[o.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.FailGets {
		return nil, context.DeadlineExceeded
	}

	o, ok := r.orgs[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *InMemoryRepository) UpdateOnboardingStatus(ctx context.Context, id string, status OnboardingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orgs[id]
	if !ok {
		return ErrNotFound
	}
	o.OnboardingStatus = status
	return nil
}
