package impact

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/menu"
	"github.com/diffen77/gastropartner-sub000/internal/recipe"
)

// Risk levels for an affected menu item, worst first.
const (
	RiskCritical = "critical"
	RiskHigh     = "high"
	RiskMedium   = "medium"
	RiskLow      = "low"
)

type RecipeSource interface {
	GetByID(ctx context.Context, organizationID, id string) (*recipe.Recipe, error)
	UpdateLines(ctx context.Context, organizationID, id string, lines []recipe.Line) error
}

type MenuSource interface {
	ListActiveByRecipe(ctx context.Context, organizationID, recipeID string) ([]menu.Item, error)
	UpdatePrice(ctx context.Context, organizationID, id string, price float64) error
}

// LineCoster prices a set of recipe lines against current ingredient costs.
type LineCoster interface {
	CostLines(ctx context.Context, organizationID string, lines []recipe.Line) (float64, []string)
}

type AffectedMenuItem struct {
	MenuItemID           string  `json:"menu_item_id"`
	Name                 string  `json:"name"`
	SellingPrice         float64 `json:"selling_price"`
	CurrentFoodCost      float64 `json:"current_food_cost"`
	NewFoodCost          float64 `json:"new_food_cost"`
	CurrentMarginPct     float64 `json:"current_margin_percentage"`
	NewMargin            float64 `json:"new_margin"`
	NewMarginPct         float64 `json:"new_margin_percentage"`
	MarginImpact         float64 `json:"margin_impact"`
	RiskLevel            string  `json:"risk_level"`
	NeedsPriceAdjustment bool    `json:"needs_price_adjustment"`
}

type PriceSuggestion struct {
	MenuItemID     string  `json:"menu_item_id"`
	Name           string  `json:"name"`
	CurrentPrice   float64 `json:"current_price"`
	SuggestedPrice float64 `json:"suggested_price"`
	IncreasePct    float64 `json:"increase_percentage"`
	Confidence     float64 `json:"confidence"`
}

type Report struct {
	RecipeID           string             `json:"recipe_id"`
	CostBefore         float64            `json:"cost_before"`
	CostAfter          float64            `json:"cost_after"`
	CostDelta          float64            `json:"cost_delta"`
	TotalAffectedItems int                `json:"total_affected_items"`
	AffectedMenuItems  []AffectedMenuItem `json:"affected_menu_items"`
	Suggestions        []PriceSuggestion  `json:"suggestions"`
	Warnings           []string           `json:"warnings,omitempty"`
	GeneratedAt        time.Time          `json:"generated_at"`
}

type Analyzer struct {
	recipes RecipeSource
	menus   MenuSource
	coster  LineCoster
	history *History
	logger  *zap.SugaredLogger
}

func NewAnalyzer(recipes RecipeSource, menus MenuSource, coster LineCoster, history *History, logger *zap.SugaredLogger) *Analyzer {
	return &Analyzer{
		recipes: recipes,
		menus:   menus,
		coster:  coster,
		history: history,
		logger:  logger,
	}
}

// ceil10 rounds up to the nearest 0.1, the granularity menu prices are
// suggested in.
func ceil10(v float64) float64 {
	return math.Ceil(v*10) / 10
}

// AnalyzeRecipeImpact projects a proposed ingredient change onto every
// active menu item using the recipe. Zero affected items yields a
// well-formed empty report, never an error.
func (a *Analyzer) AnalyzeRecipeImpact(ctx context.Context, organizationID, recipeID string, proposed []recipe.Line) (*Report, error) {
	rec, err := a.recipes.GetByID(ctx, organizationID, recipeID)
	if err != nil {
		return nil, err
	}

	servings := rec.Servings
	if servings < 1 {
		servings = 1
	}

	beforeTotal, beforeWarns := a.coster.CostLines(ctx, organizationID, rec.Lines)
	afterTotal, afterWarns := a.coster.CostLines(ctx, organizationID, proposed)

	costBefore := beforeTotal / float64(servings)
	costAfter := afterTotal / float64(servings)
	delta := costAfter - costBefore

	items, err := a.menus.ListActiveByRecipe(ctx, organizationID, recipeID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RecipeID:           recipeID,
		CostBefore:         costBefore,
		CostAfter:          costAfter,
		CostDelta:          delta,
		TotalAffectedItems: len(items),
		AffectedMenuItems:  []AffectedMenuItem{},
		Suggestions:        []PriceSuggestion{},
		Warnings:           append(beforeWarns, afterWarns...),
		GeneratedAt:        time.Now(),
	}

	for _, item := range items {
		affected := classifyItem(item, costBefore, delta)
		report.AffectedMenuItems = append(report.AffectedMenuItems, affected)

		if affected.NeedsPriceAdjustment {
			report.Suggestions = append(report.Suggestions,
				suggestPrice(item, affected))
		}
	}

	sort.SliceStable(report.Suggestions, func(i, j int) bool {
		return report.Suggestions[i].Confidence > report.Suggestions[j].Confidence
	})

	return report, nil
}

func classifyItem(item menu.Item, costBefore, delta float64) AffectedMenuItem {
	currentFoodCost := costBefore
	newFoodCost := currentFoodCost + delta

	currentMarginPct := 0.0
	newMarginPct := 0.0
	if item.SellingPrice > 0 {
		currentMarginPct = (item.SellingPrice - currentFoodCost) / item.SellingPrice * 100
		newMarginPct = (item.SellingPrice - newFoodCost) / item.SellingPrice * 100
	}

	newMargin := item.SellingPrice - newFoodCost
	marginImpact := currentMarginPct - newMarginPct

	risk := RiskLow
	switch {
	case newMargin <= 0:
		risk = RiskCritical
	case newMarginPct < 10:
		risk = RiskHigh
	case marginImpact > 5:
		risk = RiskMedium
	}

	return AffectedMenuItem{
		MenuItemID:           item.ID,
		Name:                 item.Name,
		SellingPrice:         item.SellingPrice,
		CurrentFoodCost:      currentFoodCost,
		NewFoodCost:          newFoodCost,
		CurrentMarginPct:     currentMarginPct,
		NewMargin:            newMargin,
		NewMarginPct:         newMarginPct,
		MarginImpact:         marginImpact,
		RiskLevel:            risk,
		NeedsPriceAdjustment: risk == RiskHigh || risk == RiskCritical,
	}
}

// suggestPrice targets a fixed 30% margin for a flagged item.
func suggestPrice(item menu.Item, affected AffectedMenuItem) PriceSuggestion {
	suggested := ceil10(affected.NewFoodCost / 0.7)

	confidence := 0.8
	switch affected.RiskLevel {
	case RiskCritical:
		confidence = 0.95
	case RiskHigh:
		confidence = 0.9
	}

	increasePct := 0.0
	if item.SellingPrice > 0 {
		increasePct = (suggested - item.SellingPrice) / item.SellingPrice * 100
	}
	if increasePct > 20 {
		confidence *= 0.7
	}

	return PriceSuggestion{
		MenuItemID:     item.ID,
		Name:           item.Name,
		CurrentPrice:   item.SellingPrice,
		SuggestedPrice: suggested,
		IncreasePct:    increasePct,
		Confidence:     confidence,
	}
}
