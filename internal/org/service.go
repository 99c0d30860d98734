package org

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/kvstore"
)

var (
	ErrMissingName   = errors.New("organization name is required")
	ErrInvalidStatus = errors.New("invalid onboarding status")
)

type Service struct {
	repo   Repository
	store  kvstore.Store
	logger *zap.SugaredLogger
}

func NewService(repo Repository, store kvstore.Store, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, store: store, logger: logger}
}

func (s *Service) Create(ctx context.Context, name, orgNumber string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	o := &Organization{
		Name:             name,
		OrgNumber:        strings.TrimSpace(orgNumber),
		OnboardingStatus: OnboardingNotStarted,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	s.logger.Infow("organization created", "org_id", o.ID, "name", o.Name)
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Organization, error) {
	return s.repo.GetByID(ctx, id)
}

// OnboardingStatusFor never fails: when the organization cannot be read the
// status is reported as unknown so callers cannot mistake an outage for a
// finished onboarding.
func (s *Service) OnboardingStatusFor(ctx context.Context, id string) OnboardingStatus {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warnw("onboarding status unavailable", "org_id", id, "error", err)
		return OnboardingUnknown
	}
	return o.OnboardingStatus
}

func (s *Service) SetOnboardingStatus(ctx context.Context, id string, status OnboardingStatus) error {
	switch status {
	case OnboardingNotStarted, OnboardingInProgress, OnboardingCompleted:
	default:
		return ErrInvalidStatus
	}
	return s.repo.UpdateOnboardingStatus(ctx, id, status)
}

// SaveWizard persists wizard progress so a user can resume within the
// staleness window.
func (s *Service) SaveWizard(ctx context.Context, orgID string, state WizardState) error {
	state.SavedAt = time.Now()
	return s.store.Set(ctx, kvstore.NamespaceWizard, orgID, state)
}

// ResumeWizard returns the saved wizard state, or nil when nothing usable is
// stored. Stale state is treated as absent.
func (s *Service) ResumeWizard(ctx context.Context, orgID string) (*WizardState, error) {
	var state WizardState
	found, err := s.store.GetFresh(ctx, kvstore.NamespaceWizard, orgID, kvstore.WizardMaxAge, &state)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &state, nil
}

func (s *Service) DiscardWizard(ctx context.Context, orgID string) error {
	return s.store.Delete(ctx, kvstore.NamespaceWizard, orgID)
}
