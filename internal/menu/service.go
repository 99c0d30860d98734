package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/core"
	"github.com/diffen77/gastropartner-sub000/internal/costcalc"
	"github.com/diffen77/gastropartner-sub000/internal/vat"
)

var (
	ErrMissingFields   = errors.New("name and category are required")
	ErrInvalidPrice    = errors.New("selling price must be greater than zero")
	ErrInvalidTarget   = errors.New("target food cost percentage must be in (0, 100]")
	ErrInvalidVAT      = errors.New("invalid VAT rate or mode")
	ErrInvalidFilename = errors.New("invalid file name")
)

// Storage is where menu item images end up.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

type Service struct {
	repo    Repository
	coster  core.RecipeCoster
	storage Storage
	logger  *zap.SugaredLogger
}

func NewService(repo Repository, coster core.RecipeCoster, storage Storage, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, coster: coster, storage: storage, logger: logger}
}

type Input struct {
	Name              string
	Category          string
	SellingPrice      float64
	RecipeID          *string
	TargetFoodCostPct float64
	VATRate           vat.Rate
	VATMode           vat.Mode
	IsActive          bool
}

func validate(in Input) error {
	if in.Name == "" || in.Category == "" {
		return ErrMissingFields
	}
	if in.SellingPrice <= 0 {
		return ErrInvalidPrice
	}
	if in.TargetFoodCostPct <= 0 || in.TargetFoodCostPct > 100 {
		return ErrInvalidTarget
	}
	if !in.VATRate.Valid() || !in.VATMode.Valid() {
		return ErrInvalidVAT
	}
	return nil
}

func (s *Service) Create(ctx context.Context, organizationID string, in Input) (*Item, error) {
	// Restaurant food defaults: 12% VAT on prices that already include it.
	if in.VATRate == "" {
		in.VATRate = vat.RateReducedFood
	}
	if in.VATMode == "" {
		in.VATMode = vat.ModeInclusive
	}
	if in.TargetFoodCostPct == 0 {
		in.TargetFoodCostPct = 30
	}

	if err := validate(in); err != nil {
		return nil, err
	}

	item := &Item{
		OrganizationID:    organizationID,
		Name:              in.Name,
		Category:          in.Category,
		SellingPrice:      in.SellingPrice,
		RecipeID:          in.RecipeID,
		TargetFoodCostPct: in.TargetFoodCostPct,
		VATRate:           in.VATRate,
		VATMode:           in.VATMode,
		IsActive:          true,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, organizationID, id string, in Input) (*Item, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Category = in.Category
	existing.SellingPrice = in.SellingPrice
	existing.RecipeID = in.RecipeID
	existing.TargetFoodCostPct = in.TargetFoodCostPct
	existing.VATRate = in.VATRate
	existing.VATMode = in.VATMode
	existing.IsActive = in.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Get(ctx context.Context, organizationID, id string) (*Item, error) {
	return s.repo.GetByID(ctx, organizationID, id)
}

func (s *Service) List(ctx context.Context, organizationID string, activeOnly bool) ([]Item, error) {
	return s.repo.ListByOrganization(ctx, organizationID, activeOnly)
}

func (s *Service) Delete(ctx context.Context, organizationID, id string) error {
	return s.repo.Delete(ctx, organizationID, id)
}

// Margins computes the profitability view of one menu item. Margin figures
// are VAT-exclusive; the food cost comes from the linked recipe, or zero
// when the item has none.
func (s *Service) Margins(ctx context.Context, organizationID, id string) (*Margins, error) {
	item, err := s.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	return s.marginsFor(ctx, item)
}

func (s *Service) marginsFor(ctx context.Context, item *Item) (*Margins, error) {
	var (
		foodCost float64
		warnings []string
	)

	if item.RecipeID != nil {
		cost, warns, err := s.coster.CostPerServing(ctx, item.OrganizationID, *item.RecipeID)
		if err != nil {
			return nil, fmt.Errorf("food cost for menu item %s: %w", item.ID, err)
		}
		foodCost = cost
		warnings = warns
	}

	net := vat.NetAmount(item.SellingPrice, item.VATRate, item.VATMode)
	gross := vat.GrossAmount(item.SellingPrice, item.VATRate, item.VATMode)

	margin := net - foodCost
	marginPct := 0.0
	foodCostPct := 0.0
	if net > 0 {
		marginPct = margin / net * 100
		foodCostPct = foodCost / net * 100
	}

	targetMargin := 100 - item.TargetFoodCostPct

	return &Margins{
		ItemID:          item.ID,
		FoodCost:        foodCost,
		NetPrice:        net,
		GrossPrice:      gross,
		VATAmount:       gross - net,
		Margin:          margin,
		MarginPct:       marginPct,
		FoodCostPct:     foodCostPct,
		TargetMarginPct: targetMargin,
		Status:          costcalc.ClassifyMargin(marginPct, targetMargin),
		Warnings:        warnings,
	}, nil
}

// MarginsForAll returns the margin view for every active item, for the
// analytics dashboard.
func (s *Service) MarginsForAll(ctx context.Context, organizationID string) ([]Margins, error) {
	items, err := s.repo.ListByOrganization(ctx, organizationID, true)
	if err != nil {
		return nil, err
	}

	out := make([]Margins, 0, len(items))
	for i := range items {
		m, err := s.marginsFor(ctx, &items[i])
		if err != nil {
			s.logger.Warnw("skipping margin calculation", "item", items[i].ID, "error", err)
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

// UploadImage stores an image and attaches its public URL to the item.
func (s *Service) UploadImage(ctx context.Context, organizationID, id, filename string, body io.Reader) (*Item, error) {
	item, err := s.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil, ErrInvalidFilename
	}

	key := fmt.Sprintf("menu-items/%s/%s%s", organizationID, uuid.New().String(), ext)
	url, err := s.storage.Upload(ctx, key, body)
	if err != nil {
		return nil, err
	}

	item.ImageURL = url
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
