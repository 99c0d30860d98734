package recipe

import "time"

// Line is one ingredient row in a recipe. The unit here is the unit the
// recipe measures in; it can differ from the ingredient's costing unit as
// long as both are in the same compatibility group.
type Line struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

type Recipe struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Servings       int       `json:"servings"`
	Lines          []Line    `json:"lines"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// CostPerServing is derived on read; the database never stores it.
	CostPerServing float64 `json:"cost_per_serving"`
}
