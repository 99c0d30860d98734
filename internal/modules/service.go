package modules

import (
	"context"

	"go.uber.org/zap"
)

// DefaultModules are enabled for every new organization.
var DefaultModules = []Module{CostControl, Onboarding}

type Service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewService(repo Repository, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, logger: logger}
}

// EnableDefaults turns on the starter modules for a fresh organization.
func (s *Service) EnableDefaults(ctx context.Context, organizationID string) error {
	for _, m := range DefaultModules {
		if err := s.repo.Enable(ctx, organizationID, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Enabled(ctx context.Context, organizationID string) ([]Module, error) {
	return s.repo.Enabled(ctx, organizationID)
}

func (s *Service) Enable(ctx context.Context, organizationID string, m Module) error {
	if !Valid(m) {
		return ErrUnknownModule
	}
	if err := s.repo.Enable(ctx, organizationID, m); err != nil {
		return err
	}
	s.logger.Infow("module enabled", "org_id", organizationID, "module", m)
	return nil
}

func (s *Service) Disable(ctx context.Context, organizationID string, m Module) error {
	if !Valid(m) {
		return ErrUnknownModule
	}
	if err := s.repo.Disable(ctx, organizationID, m); err != nil {
		return err
	}
	s.logger.Infow("module disabled", "org_id", organizationID, "module", m)
	return nil
}

// IsEnabled reports whether the organization has m turned on.
func (s *Service) IsEnabled(ctx context.Context, organizationID string, m Module) (bool, error) {
	enabled, err := s.repo.Enabled(ctx, organizationID)
	if err != nil {
		return false, err
	}
	for _, e := range enabled {
		if e == m {
			return true, nil
		}
	}
	return false, nil
}

// CapabilitiesFor merges the capability sets of everything the organization
// has enabled.
func (s *Service) CapabilitiesFor(ctx context.Context, organizationID string) (Capabilities, error) {
	enabled, err := s.repo.Enabled(ctx, organizationID)
	if err != nil {
		return Capabilities{}, err
	}

	var caps Capabilities
	for _, m := range enabled {
		c, err := CapabilitiesOf(m)
		if err != nil {
			// Unknown rows can only come from out-of-band writes; skip them.
			s.logger.Warnw("ignoring unknown module", "org_id", organizationID, "module", m)
			continue
		}
		caps = merge(caps, c)
	}
	return caps, nil
}
