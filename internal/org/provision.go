package org

import "context"

// ModuleDefaults turns on the starter modules for a fresh tenant. Satisfied
// by the modules service.
type ModuleDefaults interface {
	EnableDefaults(ctx context.Context, organizationID string) error
}

// Provisioner creates an organization with its default modules in one step,
// used by registration.
type Provisioner struct {
	orgs    *Service
	modules ModuleDefaults
}

func NewProvisioner(orgs *Service, modules ModuleDefaults) *Provisioner {
	return &Provisioner{orgs: orgs, modules: modules}
}

func (p *Provisioner) ProvisionOrganization(ctx context.Context, name string) (string, error) {
	o, err := p.orgs.Create(ctx, name, "")
	if err != nil {
		return "", err
	}
	if err := p.modules.EnableDefaults(ctx, o.ID); err != nil {
		return "", err
	}
	return o.ID, nil
}
