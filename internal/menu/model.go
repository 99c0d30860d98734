package menu

import (
	"time"

	"github.com/diffen77/gastropartner-sub000/internal/costcalc"
	"github.com/diffen77/gastropartner-sub000/internal/vat"
)

// Item is a sellable menu item. It links to at most one recipe; the recipe
// provides the food cost used for margin analytics.
type Item struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	SellingPrice   float64 `json:"selling_price"`
	RecipeID       *string `json:"recipe_id,omitempty"`

	// TargetFoodCostPct is the food cost share of the net price the kitchen
	// aims for, in (0, 100].
	TargetFoodCostPct float64 `json:"target_food_cost_percentage"`

	VATRate  vat.Rate `json:"vat_rate"`
	VATMode  vat.Mode `json:"vat_mode"`
	ImageURL string   `json:"image_url,omitempty"`
	IsActive bool     `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Margins is the derived profitability view of a menu item. All margin
// figures are computed on the VAT-exclusive price.
type Margins struct {
	ItemID          string                `json:"item_id"`
	FoodCost        float64               `json:"food_cost"`
	NetPrice        float64               `json:"net_price"`
	GrossPrice      float64               `json:"gross_price"`
	VATAmount       float64               `json:"vat_amount"`
	Margin          float64               `json:"margin"`
	MarginPct       float64               `json:"margin_percentage"`
	FoodCostPct     float64               `json:"food_cost_percentage"`
	TargetMarginPct float64               `json:"target_margin_percentage"`
	Status          costcalc.MarginStatus `json:"status"`
	Warnings        []string              `json:"warnings,omitempty"`
}
