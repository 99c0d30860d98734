package auth

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

type fakeProvisioner struct {
	orgID string
	calls int
}

func (p *fakeProvisioner) ProvisionOrganization(ctx context.Context, name string) (string, error) {
	p.calls++
	return p.orgID, nil
}

func newTestService() (*Service, *InMemoryUserRepository, *fakeProvisioner) {
	repo := NewInMemoryUserRepository()
	prov := &fakeProvisioner{orgID: "org-1"}
	return NewService(repo, prov, zap.NewNop().Sugar()), repo, prov
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	service, repo, _ := newTestService()

	password := "Password@123"

	_, err := service.Register(context.Background(), RegisterInput{
		Name:             "Test User",
		Email:            "test@example.com",
		Password:         password,
		OrganizationName: "Krogen AB",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterProvisionsOrganizationAndOwner(t *testing.T) {
	service, _, prov := newTestService()

	user, err := service.Register(context.Background(), RegisterInput{
		Name:             "Test User",
		Email:            "owner@example.com",
		Password:         "Password@123",
		OrganizationName: "Krogen AB",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if prov.calls != 1 {
		t.Errorf("provisioner called %d times, want 1", prov.calls)
	}
	if user.OrganizationID != "org-1" {
		t.Errorf("organization id = %q, want org-1", user.OrganizationID)
	}
	if user.Role != RoleOwner {
		t.Errorf("first user role = %q, want %q", user.Role, RoleOwner)
	}
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	service, _, _ := newTestService()

	in := RegisterInput{
		Name:             "Test User",
		Email:            "dup@example.com",
		Password:         "Password@123",
		OrganizationName: "Krogen AB",
	}

	if _, err := service.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := service.Register(context.Background(), in); err != ErrEmailExists {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), RegisterInput{
		Name:             "Test User",
		Email:            "login@example.com",
		Password:         "Password@123",
		OrganizationName: "Krogen AB",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.Login(context.Background(), "login@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
