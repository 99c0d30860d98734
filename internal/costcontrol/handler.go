package costcontrol

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diffen77/gastropartner-sub000/internal/core"
	"github.com/diffen77/gastropartner-sub000/internal/costcalc"
	"github.com/diffen77/gastropartner-sub000/internal/menu"
	"github.com/diffen77/gastropartner-sub000/internal/units"
)

// MenuMarginSource is the slice of the menu feature the cost-control
// endpoints need. Satisfied by the menu service.
type MenuMarginSource interface {
	Margins(ctx context.Context, organizationID, id string) (*menu.Margins, error)
}

// Handler exposes the interactive calculator, recipe/menu-item costing and
// unit conversion endpoints.
type Handler struct {
	sessions *SessionManager
	coster   core.RecipeCoster
	menus    MenuMarginSource
}

func NewHandler(sessions *SessionManager, coster core.RecipeCoster, menus MenuMarginSource) *Handler {
	return &Handler{sessions: sessions, coster: coster, menus: menus}
}

func (h *Handler) session(c *gin.Context) *costcalc.Calculator {
	return h.sessions.ForOrganization(c.GetString("organizationID"))
}

// AddItem appends a row to the organization's calculation session.
func (h *Handler) AddItem(c *gin.Context) {
	var item costcalc.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id := h.session(c).AddItem(item)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var patch costcalc.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !h.session(c).UpdateItem(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	if !h.session(c).RemoveItem(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearItems(c *gin.Context) {
	h.session(c).ClearItems()
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.session(c).Items()})
}

func (h *Handler) SetServings(c *gin.Context) {
	var req struct {
		Servings int `json:"servings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.session(c).SetServings(req.Servings)
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetTargetMargin(c *gin.Context) {
	var req struct {
		TargetMargin float64 `json:"target_margin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.session(c).SetTargetMargin(c.Request.Context(), req.TargetMargin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetPriceOverride(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.session(c).SetPriceOverride(req.Price)
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearPriceOverride(c *gin.Context) {
	h.session(c).ClearPriceOverride()
	c.Status(http.StatusNoContent)
}

// Result flushes any pending debounce and returns the up-to-date figures.
func (h *Handler) Result(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).Flush())
}

func (h *Handler) ResetSession(c *gin.Context) {
	h.sessions.Reset(c.GetString("organizationID"))
	c.Status(http.StatusNoContent)
}

// CalculateRecipe prices a stored recipe at the session's target margin.
func (h *Handler) CalculateRecipe(c *gin.Context) {
	orgID := c.GetString("organizationID")

	costPerServing, warnings, err := h.coster.CostPerServing(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	target := h.sessions.ForOrganization(orgID).TargetMargin()
	suggested := costcalc.SuggestedPrice(costPerServing, target)
	margin := 0.0
	if suggested > 0 {
		margin = (suggested - costPerServing) / suggested * 100
	}

	c.JSON(http.StatusOK, gin.H{
		"cost_per_serving": costPerServing,
		"target_margin":    target,
		"suggested_price":  suggested,
		"status":           costcalc.ClassifyMargin(margin, target),
		"suggestions":      costcalc.PriceSuggestions(costPerServing),
		"warnings":         warnings,
	})
}

// CalculateMenuItem evaluates a menu item's actual price against its food
// cost. The selling price acts as a price override, so the margin reflects
// reality instead of the target.
func (h *Handler) CalculateMenuItem(c *gin.Context) {
	margins, err := h.menus.Margins(c.Request.Context(), c.GetString("organizationID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"margins":     margins,
		"price_mode":  costcalc.PriceModeOverride,
		"suggestions": costcalc.PriceSuggestions(margins.FoodCost),
	})
}

// ConvertUnits converts a quantity between units, fail-soft on incompatible
// pairs.
func (h *Handler) ConvertUnits(c *gin.Context) {
	var req struct {
		Quantity float64 `json:"quantity"`
		From     string  `json:"from"`
		To       string  `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	converted, warnings := units.Convert(req.Quantity, req.From, req.To)
	c.JSON(http.StatusOK, gin.H{
		"quantity":   converted,
		"unit":       req.To,
		"compatible": units.AreCompatible(req.From, req.To),
		"warnings":   warnings,
	})
}

// CompatibleUnits lists the units a given unit can convert to.
func (h *Handler) CompatibleUnits(c *gin.Context) {
	unit := c.Query("unit")
	if unit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit query parameter required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unit":       unit,
		"known":      units.Known(unit),
		"compatible": units.CompatibleUnits(unit),
	})
}
