package core

import "context"

// RecipeCoster exposes recipe costing to features that need a food cost
// without depending on the recipe package's wiring. Warnings carry
// unit-conversion fallbacks; they never fail the calculation.
type RecipeCoster interface {
	CostPerServing(ctx context.Context, organizationID, recipeID string) (float64, []string, error)
}
