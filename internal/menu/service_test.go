package menu

import (
	"context"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/vat"
)

// fixedCoster returns a constant food cost for any recipe.
type fixedCoster struct {
	cost     float64
	warnings []string
}

func (f fixedCoster) CostPerServing(ctx context.Context, organizationID, recipeID string) (float64, []string, error) {
	return f.cost, f.warnings, nil
}

func newTestService(cost float64) (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	service := NewService(repo, fixedCoster{cost: cost}, nil, zap.NewNop().Sugar())
	return service, repo
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCreateValidation(t *testing.T) {
	service, _ := newTestService(0)
	ctx := context.Background()

	if _, err := service.Create(ctx, "org-1", Input{Category: "Varmrätt", SellingPrice: 100}); err != ErrMissingFields {
		t.Errorf("missing name: got %v, want ErrMissingFields", err)
	}
	if _, err := service.Create(ctx, "org-1", Input{Name: "Köttbullar", Category: "Varmrätt", SellingPrice: 0}); err != ErrInvalidPrice {
		t.Errorf("zero price: got %v, want ErrInvalidPrice", err)
	}
	if _, err := service.Create(ctx, "org-1", Input{
		Name: "Köttbullar", Category: "Varmrätt", SellingPrice: 100, TargetFoodCostPct: 120,
	}); err != ErrInvalidTarget {
		t.Errorf("target > 100: got %v, want ErrInvalidTarget", err)
	}
	if _, err := service.Create(ctx, "org-1", Input{
		Name: "Köttbullar", Category: "Varmrätt", SellingPrice: 100,
		VATRate: "luxury", VATMode: vat.ModeInclusive,
	}); err != ErrInvalidVAT {
		t.Errorf("bad VAT rate: got %v, want ErrInvalidVAT", err)
	}
}

func TestCreateDefaults(t *testing.T) {
	service, _ := newTestService(0)

	item, err := service.Create(context.Background(), "org-1", Input{
		Name: "Köttbullar", Category: "Varmrätt", SellingPrice: 145,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if item.VATRate != vat.RateReducedFood {
		t.Errorf("default VAT rate = %v, want reduced_food", item.VATRate)
	}
	if item.VATMode != vat.ModeInclusive {
		t.Errorf("default VAT mode = %v, want inclusive", item.VATMode)
	}
	if item.TargetFoodCostPct != 30 {
		t.Errorf("default target food cost = %v, want 30", item.TargetFoodCostPct)
	}
	if !item.IsActive {
		t.Error("new items should be active")
	}
}

func TestMarginsVATInclusive(t *testing.T) {
	service, _ := newTestService(40)
	ctx := context.Background()

	recipeID := "recipe-1"
	item, err := service.Create(ctx, "org-1", Input{
		Name:         "Dagens lunch",
		Category:     "Lunch",
		SellingPrice: 112, // 100 kr net at 12% inclusive VAT
		RecipeID:     &recipeID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	margins, err := service.Margins(ctx, "org-1", item.ID)
	if err != nil {
		t.Fatalf("margins failed: %v", err)
	}

	if !almostEqual(margins.NetPrice, 100) {
		t.Errorf("net price = %v, want 100", margins.NetPrice)
	}
	if !almostEqual(margins.VATAmount, 12) {
		t.Errorf("VAT amount = %v, want 12", margins.VATAmount)
	}
	if !almostEqual(margins.FoodCost, 40) {
		t.Errorf("food cost = %v, want 40", margins.FoodCost)
	}
	if !almostEqual(margins.Margin, 60) {
		t.Errorf("margin = %v, want 60", margins.Margin)
	}
	if !almostEqual(margins.MarginPct, 60) {
		t.Errorf("margin pct = %v, want 60", margins.MarginPct)
	}
	if !almostEqual(margins.FoodCostPct, 40) {
		t.Errorf("food cost pct = %v, want 40", margins.FoodCostPct)
	}
}

func TestMarginsWithoutRecipe(t *testing.T) {
	service, _ := newTestService(999)

	item, err := service.Create(context.Background(), "org-1", Input{
		Name: "Läsk", Category: "Dryck", SellingPrice: 25,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	margins, err := service.Margins(context.Background(), "org-1", item.ID)
	if err != nil {
		t.Fatalf("margins failed: %v", err)
	}
	if margins.FoodCost != 0 {
		t.Errorf("food cost without recipe = %v, want 0", margins.FoodCost)
	}
}

func TestMarginStatusUsesTargetFoodCost(t *testing.T) {
	// Food cost 40 on net 100 means 60% margin. Target food cost 30% gives
	// target margin 70, so 60 lands in the warning band (>= 49, < 70).
	service, _ := newTestService(40)
	ctx := context.Background()

	recipeID := "recipe-1"
	item, err := service.Create(ctx, "org-1", Input{
		Name:         "Dagens lunch",
		Category:     "Lunch",
		SellingPrice: 112,
		RecipeID:     &recipeID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	margins, err := service.Margins(ctx, "org-1", item.ID)
	if err != nil {
		t.Fatalf("margins failed: %v", err)
	}
	if margins.Status.Level != "warning" {
		t.Errorf("status = %q, want warning", margins.Status.Level)
	}
}
