package modules

import "context"

// Repository stores which modules an organization has enabled.
type Repository interface {
	Enabled(ctx context.Context, organizationID string) ([]Module, error)
	Enable(ctx context.Context, organizationID string, m Module) error
	Disable(ctx context.Context, organizationID string, m Module) error
}
