package org

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("organization not found")

type Repository interface {
	Create(ctx context.Context, o *Organization) error
	GetByID(ctx context.Context, id string) (*Organization, error)
	UpdateOnboardingStatus(ctx context.Context, id string, status OnboardingStatus) error
}
