package ingredient

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/units"
)

var (
	ErrMissingFields = errors.New("name and category are required")
	ErrNegativeCost  = errors.New("cost per unit cannot be negative")
	ErrMissingUnit   = errors.New("costing unit is required")
)

type Service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewService(repo Repository, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateInput carries everything needed to create an ingredient. The unit
// chosen here becomes the permanent cost basis.
type CreateInput struct {
	Name        string
	Category    string
	Unit        string
	CostPerUnit float64
	Supplier    string
	Notes       string
}

func (s *Service) Create(ctx context.Context, organizationID string, in CreateInput) (*Ingredient, error) {
	if in.Name == "" || in.Category == "" {
		return nil, ErrMissingFields
	}
	if in.Unit == "" {
		return nil, ErrMissingUnit
	}
	if in.CostPerUnit < 0 {
		return nil, ErrNegativeCost
	}

	if !units.Known(in.Unit) {
		s.logger.Warnw("ingredient created with unit outside the conversion table",
			"unit", in.Unit, "name", in.Name)
	}

	ing := &Ingredient{
		OrganizationID: organizationID,
		Name:           in.Name,
		Category:       in.Category,
		Unit:           in.Unit,
		CostPerUnit:    in.CostPerUnit,
		Supplier:       in.Supplier,
		Notes:          in.Notes,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// UpdateInput deliberately has no unit field: the costing unit is fixed at
// creation.
type UpdateInput struct {
	Name        string
	Category    string
	CostPerUnit float64
	Supplier    string
	Notes       string
	IsActive    bool
}

func (s *Service) Update(ctx context.Context, organizationID, id string, in UpdateInput) (*Ingredient, error) {
	if in.Name == "" || in.Category == "" {
		return nil, ErrMissingFields
	}
	if in.CostPerUnit < 0 {
		return nil, ErrNegativeCost
	}

	existing, err := s.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Category = in.Category
	existing.CostPerUnit = in.CostPerUnit
	existing.Supplier = in.Supplier
	existing.Notes = in.Notes
	existing.IsActive = in.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Get(ctx context.Context, organizationID, id string) (*Ingredient, error) {
	return s.repo.GetByID(ctx, organizationID, id)
}

func (s *Service) List(ctx context.Context, organizationID string, activeOnly bool) ([]Ingredient, error) {
	return s.repo.ListByOrganization(ctx, organizationID, activeOnly)
}

func (s *Service) Delete(ctx context.Context, organizationID, id string) error {
	return s.repo.Delete(ctx, organizationID, id)
}
