package recipe

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/ingredient"
	"github.com/diffen77/gastropartner-sub000/internal/units"
)

var ErrMissingName = errors.New("recipe name is required")

// IngredientSource is the slice of the ingredient feature the recipe
// service needs.
type IngredientSource interface {
	GetByID(ctx context.Context, organizationID, id string) (*ingredient.Ingredient, error)
}

type Service struct {
	repo        Repository
	ingredients IngredientSource
	logger      *zap.SugaredLogger
}

func NewService(repo Repository, ingredients IngredientSource, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, ingredients: ingredients, logger: logger}
}

type Input struct {
	Name     string
	Servings int
	Lines    []Line
	IsActive bool
}

// clampServings keeps cost-per-serving away from division by zero.
func clampServings(servings int) int {
	if servings < 1 {
		return 1
	}
	return servings
}

func (s *Service) Create(ctx context.Context, organizationID string, in Input) (*Recipe, error) {
	if in.Name == "" {
		return nil, ErrMissingName
	}

	rec := &Recipe{
		OrganizationID: organizationID,
		Name:           in.Name,
		Servings:       clampServings(in.Servings),
		Lines:          in.Lines,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, organizationID, id string, in Input) (*Recipe, error) {
	if in.Name == "" {
		return nil, ErrMissingName
	}

	existing, err := s.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Servings = clampServings(in.Servings)
	existing.Lines = in.Lines
	existing.IsActive = in.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Get returns the recipe with its derived cost per serving filled in.
func (s *Service) Get(ctx context.Context, organizationID, id string) (*Recipe, []string, error) {
	rec, err := s.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, nil, err
	}

	cost, warnings := s.costLines(ctx, organizationID, rec.Lines)
	rec.CostPerServing = cost / float64(clampServings(rec.Servings))
	return rec, warnings, nil
}

func (s *Service) List(ctx context.Context, organizationID string, activeOnly bool) ([]Recipe, error) {
	recipes, err := s.repo.ListByOrganization(ctx, organizationID, activeOnly)
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		cost, _ := s.costLines(ctx, organizationID, recipes[i].Lines)
		recipes[i].CostPerServing = cost / float64(clampServings(recipes[i].Servings))
	}
	return recipes, nil
}

func (s *Service) Delete(ctx context.Context, organizationID, id string) error {
	return s.repo.Delete(ctx, organizationID, id)
}

// CostPerServing implements core.RecipeCoster.
func (s *Service) CostPerServing(ctx context.Context, organizationID, recipeID string) (float64, []string, error) {
	rec, err := s.repo.GetByID(ctx, organizationID, recipeID)
	if err != nil {
		return 0, nil, err
	}

	cost, warnings := s.costLines(ctx, organizationID, rec.Lines)
	return cost / float64(clampServings(rec.Servings)), warnings, nil
}

// CostLines prices an arbitrary set of lines against current ingredient
// costs, used for proposed-change previews.
func (s *Service) CostLines(ctx context.Context, organizationID string, lines []Line) (float64, []string) {
	return s.costLines(ctx, organizationID, lines)
}

func (s *Service) costLines(ctx context.Context, organizationID string, lines []Line) (float64, []string) {
	var (
		total    float64
		warnings []string
	)

	for _, line := range lines {
		ing, err := s.ingredients.GetByID(ctx, organizationID, line.IngredientID)
		if err != nil {
			// Fail-soft, matching unit conversion: a missing ingredient
			// becomes a warning, not a failed calculation.
			warnings = append(warnings,
				fmt.Sprintf("ingrediens %s saknas, raden hoppas över", line.IngredientID))
			continue
		}

		quantity, warns := units.Convert(line.Quantity, line.Unit, ing.Unit)
		warnings = append(warnings, warns...)
		total += quantity * ing.CostPerUnit
	}

	return total, warnings
}
