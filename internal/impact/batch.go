package impact

import (
	"context"

	"github.com/diffen77/gastropartner-sub000/internal/recipe"
)

// SelectedPriceUpdate is one price suggestion the caller chose to apply.
type SelectedPriceUpdate struct {
	MenuItemID string  `json:"menu_item_id"`
	Price      float64 `json:"price"`
}

type FailedUpdate struct {
	MenuItemID string `json:"menu_item_id"`
	Error      string `json:"error"`
}

type BatchResult struct {
	Success             bool           `json:"success"`
	RecipeUpdated       bool           `json:"recipe_updated"`
	PriceUpdatesApplied int            `json:"price_updates_applied"`
	FailedUpdates       []FailedUpdate `json:"failed_updates"`
}

// PerformBatchRecipeUpdate persists the recipe change and applies the
// selected price updates one call each. There is no transactional
// atomicity: a failed sub-operation is reported but never rolls back the
// ones that already succeeded.
func (a *Analyzer) PerformBatchRecipeUpdate(
	ctx context.Context,
	organizationID, recipeID string,
	newLines []recipe.Line,
	priceUpdates []SelectedPriceUpdate,
	reason string,
) (*BatchResult, error) {

	current, err := a.recipes.GetByID(ctx, organizationID, recipeID)
	if err != nil {
		return nil, err
	}

	// Snapshot first so the previous state survives even a partial failure.
	if err := a.history.Record(ctx, organizationID, current, reason); err != nil {
		a.logger.Warnw("could not record recipe history", "recipe", recipeID, "error", err)
	}

	result := &BatchResult{FailedUpdates: []FailedUpdate{}}

	if err := a.recipes.UpdateLines(ctx, organizationID, recipeID, newLines); err != nil {
		a.logger.Errorw("recipe update failed", "recipe", recipeID, "error", err)
	} else {
		result.RecipeUpdated = true
	}

	for _, update := range priceUpdates {
		if err := a.menus.UpdatePrice(ctx, organizationID, update.MenuItemID, update.Price); err != nil {
			result.FailedUpdates = append(result.FailedUpdates, FailedUpdate{
				MenuItemID: update.MenuItemID,
				Error:      err.Error(),
			})
			continue
		}
		result.PriceUpdatesApplied++
	}

	result.Success = result.RecipeUpdated && len(result.FailedUpdates) == 0
	return result, nil
}
