package costcalc

import (
	"context"
	"testing"
	"time"

	"github.com/diffen77/gastropartner-sub000/internal/kvstore"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	c := NewCalculator(kvstore.NewMemoryStore(), "org-test", time.Millisecond)
	t.Cleanup(c.Close)
	return c
}

func TestTotalCostSameUnit(t *testing.T) {
	c := newTestCalculator(t)

	// 100 g at 0.02 kr/g = 2.00 kr
	c.AddItem(Item{
		Type:          ItemIngredient,
		Name:          "Smör",
		Quantity:      100,
		Unit:          "g",
		CostPerUnit:   0.02,
		CostBasisUnit: "g",
	})

	result := c.Flush()
	if !almostEqual(result.TotalCost, 2) {
		t.Errorf("total cost = %v, want 2.00", result.TotalCost)
	}

	c.SetServings(4)
	result = c.Flush()
	if !almostEqual(result.CostPerServing, 0.5) {
		t.Errorf("cost per serving = %v, want 0.50", result.CostPerServing)
	}
}

func TestTotalCostCrossUnitBasis(t *testing.T) {
	c := newTestCalculator(t)

	// 100 g at 20 kr/kg: 100 g = 0.1 kg, 0.1 * 20 = 2.00 kr
	c.AddItem(Item{
		Type:          ItemIngredient,
		Name:          "Mjöl",
		Quantity:      100,
		Unit:          "g",
		CostPerUnit:   20,
		CostBasisUnit: "kg",
	})

	result := c.Flush()
	if !almostEqual(result.TotalCost, 2) {
		t.Errorf("total cost = %v, want 2.00", result.TotalCost)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("compatible units should not warn: %v", result.Warnings)
	}
}

func TestIncompatibleBasisWarns(t *testing.T) {
	c := newTestCalculator(t)

	c.AddItem(Item{
		Type:          ItemIngredient,
		Name:          "Ägg",
		Quantity:      100,
		Unit:          "g",
		CostPerUnit:   3,
		CostBasisUnit: "st",
	})

	result := c.Flush()
	// Fail-soft: raw quantity is used, and the result carries a warning.
	if !almostEqual(result.TotalCost, 300) {
		t.Errorf("total cost = %v, want 300 (raw quantity)", result.TotalCost)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", result.Warnings)
	}
}

func TestItemMutations(t *testing.T) {
	c := newTestCalculator(t)

	id1 := c.AddItem(Item{Type: ItemIngredient, Quantity: 1, Unit: "kg", CostPerUnit: 10})
	id2 := c.AddItem(Item{Type: ItemIngredient, Quantity: 2, Unit: "kg", CostPerUnit: 5})

	if id1 == id2 {
		t.Fatal("item ids must be unique within a session")
	}

	result := c.Flush()
	if !almostEqual(result.TotalCost, 20) {
		t.Errorf("total = %v, want 20", result.TotalCost)
	}

	newQuantity := 3.0
	if !c.UpdateItem(id2, Patch{Quantity: &newQuantity}) {
		t.Fatal("update of existing item failed")
	}
	if !almostEqual(c.Flush().TotalCost, 25) {
		t.Errorf("total after update = %v, want 25", c.Flush().TotalCost)
	}

	if !c.RemoveItem(id1) {
		t.Fatal("remove of existing item failed")
	}
	if c.RemoveItem("no-such-id") {
		t.Error("removing unknown id should return false")
	}
	if !almostEqual(c.Flush().TotalCost, 15) {
		t.Errorf("total after remove = %v, want 15", c.Flush().TotalCost)
	}

	c.ClearItems()
	if got := c.Flush().TotalCost; got != 0 {
		t.Errorf("total after clear = %v, want 0", got)
	}
}

func TestServingsClampedToOne(t *testing.T) {
	c := newTestCalculator(t)
	c.AddItem(Item{Type: ItemIngredient, Quantity: 1, Unit: "kg", CostPerUnit: 10})

	c.SetServings(0)
	result := c.Flush()
	if result.Servings != 1 {
		t.Errorf("servings = %d, want clamp to 1", result.Servings)
	}
	if !almostEqual(result.CostPerServing, 10) {
		t.Errorf("cost per serving = %v, want 10", result.CostPerServing)
	}
}

func TestCurrentMarginFollowsTargetInSuggestedMode(t *testing.T) {
	c := newTestCalculator(t)
	c.AddItem(Item{Type: ItemIngredient, Quantity: 1, Unit: "kg", CostPerUnit: 7})

	result := c.Flush()
	if result.PriceMode != PriceModeSuggested {
		t.Fatalf("default price mode = %v, want suggested", result.PriceMode)
	}
	// With a derived price the current margin equals the target by
	// construction.
	if !almostEqual(result.CurrentMargin, result.TargetMargin) {
		t.Errorf("current margin %v != target %v in suggested mode",
			result.CurrentMargin, result.TargetMargin)
	}
}

func TestPriceOverrideMode(t *testing.T) {
	c := newTestCalculator(t)
	c.AddItem(Item{Type: ItemIngredient, Quantity: 1, Unit: "kg", CostPerUnit: 6})

	c.SetPriceOverride(10)
	result := c.Flush()

	if result.PriceMode != PriceModeOverride {
		t.Fatalf("price mode = %v, want override", result.PriceMode)
	}
	// (10 - 6) / 10 = 40%
	if !almostEqual(result.CurrentMargin, 40) {
		t.Errorf("current margin = %v, want 40", result.CurrentMargin)
	}

	c.ClearPriceOverride()
	if c.Flush().PriceMode != PriceModeSuggested {
		t.Error("clearing the override should restore suggested mode")
	}
}

func TestTargetMarginPersisted(t *testing.T) {
	store := kvstore.NewMemoryStore()

	c := NewCalculator(store, "org-1", time.Millisecond)
	if err := c.SetTargetMargin(context.Background(), 45); err != nil {
		t.Fatalf("SetTargetMargin failed: %v", err)
	}
	c.Close()

	// A new session for the same key picks the preference up again.
	c2 := NewCalculator(store, "org-1", time.Millisecond)
	defer c2.Close()
	if got := c2.TargetMargin(); got != 45 {
		t.Errorf("restored target margin = %v, want 45", got)
	}

	// A different key still gets the default.
	c3 := NewCalculator(store, "org-2", time.Millisecond)
	defer c3.Close()
	if got := c3.TargetMargin(); got != DefaultTargetMargin {
		t.Errorf("fresh target margin = %v, want %v", got, DefaultTargetMargin)
	}
}

func TestDebounceTrailingSemantics(t *testing.T) {
	c := NewCalculator(kvstore.NewMemoryStore(), "org-debounce", 100*time.Millisecond)
	defer c.Close()

	before := c.Result()

	// A burst of mutations inside the window triggers no recalculation...
	c.AddItem(Item{Type: ItemIngredient, Quantity: 1, Unit: "kg", CostPerUnit: 10})
	c.AddItem(Item{Type: ItemIngredient, Quantity: 1, Unit: "kg", CostPerUnit: 5})

	if got := c.Result(); got.TotalCost != before.TotalCost {
		t.Error("result should still be stale inside the debounce window")
	}

	// ...until the window elapses after the last mutation.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if almostEqual(c.Result().TotalCost, 15) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("debounced recalculation never ran, total = %v", c.Result().TotalCost)
}
