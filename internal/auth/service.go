package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailExists        = errors.New("email already exists")
)

// OrganizationProvisioner creates the tenant a new registration belongs to.
// Wired to the organization service so auth never imports it directly.
type OrganizationProvisioner interface {
	ProvisionOrganization(ctx context.Context, name string) (string, error)
}

type Service struct {
	repo        UserRepository
	provisioner OrganizationProvisioner
	logger      *zap.SugaredLogger
}

func NewService(repo UserRepository, provisioner OrganizationProvisioner, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, provisioner: provisioner, logger: logger}
}

type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	OrganizationName string
}

// Register creates a new organization and its first user, who becomes OWNER.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.OrganizationName == "" {
		return nil, ErrMissingFields
	}

	exists, _ := s.repo.ExistsByEmail(ctx, in.Email)
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(in.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	orgID, err := s.provisioner.ProvisionOrganization(ctx, in.OrganizationName)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:           in.Name,
		Email:          in.Email,
		Password:       string(hashedPassword),
		Role:           RoleOwner,
		OrganizationID: orgID,
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID, "org_id", orgID)
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
