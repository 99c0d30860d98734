package costcalc

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diffen77/gastropartner-sub000/internal/kvstore"
	"github.com/diffen77/gastropartner-sub000/internal/units"
)

// DefaultRecalcDelay is the trailing-debounce window for recalculation.
const DefaultRecalcDelay = 300 * time.Millisecond

// PriceMode says where the price used for the current margin comes from.
// Suggested mode derives it from the target margin (which makes the current
// margin equal the target by construction); override mode uses a price the
// caller picked independently.
type PriceMode string

const (
	PriceModeSuggested PriceMode = "suggested"
	PriceModeOverride  PriceMode = "override"
)

// Preferences is the durable calculator state, one entry per organization.
type Preferences struct {
	TargetMargin float64 `json:"target_margin"`
}

// Result is the derived output of a calculation session.
type Result struct {
	TotalCost       float64           `json:"total_cost"`
	CostPerServing  float64           `json:"cost_per_serving"`
	SuggestedPrice  float64           `json:"suggested_price"`
	Price           float64           `json:"price"`
	PriceMode       PriceMode         `json:"price_mode"`
	CurrentMargin   float64           `json:"current_margin"`
	TargetMargin    float64           `json:"target_margin"`
	Servings        int               `json:"servings"`
	Status          MarginStatus      `json:"status"`
	Suggestions     []PriceSuggestion `json:"suggestions"`
	Warnings        []string          `json:"warnings,omitempty"`
	ComputedAt      time.Time         `json:"computed_at"`
}

// Calculator is an interactive calculation session. Mutations schedule a
// debounced recalculation: each new mutation resets a single pending timer,
// so only the last mutation in a burst triggers computation. Safe for
// concurrent use.
type Calculator struct {
	mu sync.Mutex

	items         []Item
	servings      int
	targetMargin  float64
	priceMode     PriceMode
	overridePrice float64

	delay  time.Duration
	timer  *time.Timer
	result Result

	prefs    kvstore.Store
	prefsKey string
}

// NewCalculator creates a session whose target margin is loaded from, and
// persisted to, the preferences store under prefsKey. A zero delay means
// DefaultRecalcDelay.
func NewCalculator(prefs kvstore.Store, prefsKey string, delay time.Duration) *Calculator {
	if delay <= 0 {
		delay = DefaultRecalcDelay
	}

	target := float64(DefaultTargetMargin)
	if prefs != nil {
		var p Preferences
		if found, err := prefs.Get(context.Background(), kvstore.NamespacePreferences, prefsKey, &p); err == nil && found {
			target = clampTargetMargin(p.TargetMargin)
		}
	}

	c := &Calculator{
		servings:     1,
		targetMargin: target,
		priceMode:    PriceModeSuggested,
		delay:        delay,
		prefs:        prefs,
		prefsKey:     prefsKey,
	}
	c.result = c.compute()
	return c
}

// AddItem appends an item and returns its fresh session-unique id.
func (c *Calculator) AddItem(item Item) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	item.ID = uuid.New().String()
	if item.CostBasisUnit == "" {
		item.CostBasisUnit = item.Unit
	}
	c.items = append(c.items, item)
	c.scheduleLocked()
	return item.ID
}

// RemoveItem deletes the item with the given id. Returns false when the id
// is unknown.
func (c *Calculator) RemoveItem(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.scheduleLocked()
			return true
		}
	}
	return false
}

// UpdateItem applies a partial update to the item with the given id.
func (c *Calculator) UpdateItem(id string, patch Patch) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			patch.apply(&c.items[i])
			c.scheduleLocked()
			return true
		}
	}
	return false
}

// ClearItems discards every item in the session.
func (c *Calculator) ClearItems() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.scheduleLocked()
}

// Items returns a copy of the current item list.
func (c *Calculator) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// SetServings clamps to at least one serving so cost-per-serving never
// divides by zero.
func (c *Calculator) SetServings(servings int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if servings < 1 {
		servings = 1
	}
	c.servings = servings
	c.scheduleLocked()
}

// SetTargetMargin updates and persists the target margin preference.
func (c *Calculator) SetTargetMargin(ctx context.Context, margin float64) error {
	c.mu.Lock()
	c.targetMargin = clampTargetMargin(margin)
	c.scheduleLocked()
	target := c.targetMargin
	c.mu.Unlock()

	if c.prefs == nil {
		return nil
	}
	return c.prefs.Set(ctx, kvstore.NamespacePreferences, c.prefsKey, Preferences{TargetMargin: target})
}

func (c *Calculator) TargetMargin() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetMargin
}

// SetPriceOverride switches the session to an independently chosen selling
// price, as in the menu-item flow where the price is not derived from the
// target margin.
func (c *Calculator) SetPriceOverride(price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.priceMode = PriceModeOverride
	c.overridePrice = price
	c.scheduleLocked()
}

// ClearPriceOverride returns the session to suggested pricing.
func (c *Calculator) ClearPriceOverride() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.priceMode = PriceModeSuggested
	c.overridePrice = 0
	c.scheduleLocked()
}

// Result returns the most recently computed result. It may lag the latest
// mutation by up to the debounce delay.
func (c *Calculator) Result() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Flush cancels any pending recalculation and computes synchronously.
func (c *Calculator) Flush() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.result = c.compute()
	return c.result
}

// Close stops the pending timer, if any.
func (c *Calculator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
}

// scheduleLocked resets the single-slot debounce timer. Caller holds c.mu.
func (c *Calculator) scheduleLocked() {
	if c.timer == nil {
		c.timer = time.AfterFunc(c.delay, c.recalculate)
		return
	}
	c.timer.Reset(c.delay)
}

func (c *Calculator) recalculate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = c.compute()
}

// compute derives the result from current state. Caller holds c.mu (or the
// calculator is not yet shared).
func (c *Calculator) compute() Result {
	var (
		total    float64
		warnings []string
	)

	for _, item := range c.items {
		quantity, warns := units.Convert(item.Quantity, item.Unit, item.CostBasisUnit)
		warnings = append(warnings, warns...)
		total += quantity * item.CostPerUnit
	}

	costPerServing := total / float64(c.servings)
	suggested := SuggestedPrice(costPerServing, c.targetMargin)

	price := suggested
	if c.priceMode == PriceModeOverride {
		price = c.overridePrice
	}

	margin := 0.0
	if price > 0 {
		margin = (price - costPerServing) / price * 100
	}

	return Result{
		TotalCost:      total,
		CostPerServing: costPerServing,
		SuggestedPrice: suggested,
		Price:          price,
		PriceMode:      c.priceMode,
		CurrentMargin:  margin,
		TargetMargin:   c.targetMargin,
		Servings:       c.servings,
		Status:         ClassifyMargin(margin, c.targetMargin),
		Suggestions:    PriceSuggestions(costPerServing),
		ComputedAt:     time.Now(),
		Warnings:       warnings,
	}
}
