package impact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diffen77/gastropartner-sub000/internal/recipe"
)

type Handler struct {
	analyzer *Analyzer
	history  *History
}

func NewHandler(analyzer *Analyzer, history *History) *Handler {
	return &Handler{analyzer: analyzer, history: history}
}

type lineRequest struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

func toLines(reqs []lineRequest) []recipe.Line {
	lines := make([]recipe.Line, 0, len(reqs))
	for _, l := range reqs {
		lines = append(lines, recipe.Line{
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
		})
	}
	return lines
}

type analyzeRequest struct {
	Lines []lineRequest `json:"lines"`
}

func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.analyzer.AnalyzeRecipeImpact(
		c.Request.Context(),
		c.GetString("organizationID"),
		c.Param("id"),
		toLines(req.Lines),
	)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

type applyRequest struct {
	Lines        []lineRequest         `json:"lines"`
	PriceUpdates []SelectedPriceUpdate `json:"price_updates"`
	Reason       string                `json:"reason"`
}

func (h *Handler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.analyzer.PerformBatchRecipeUpdate(
		c.Request.Context(),
		c.GetString("organizationID"),
		c.Param("id"),
		toLines(req.Lines),
		req.PriceUpdates,
		req.Reason,
	)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) History(c *gin.Context) {
	entries, err := h.history.List(
		c.Request.Context(),
		c.GetString("organizationID"),
		c.Param("id"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}
