package ingredient

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Supplier    string  `json:"supplier"`
	Notes       string  `json:"notes"`
}

type updateRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Supplier    string  `json:"supplier"`
	Notes       string  `json:"notes"`
	IsActive    *bool   `json:"is_active"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ing, err := h.service.Create(c.Request.Context(), c.GetString("organizationID"), CreateInput{
		Name:        req.Name,
		Category:    req.Category,
		Unit:        req.Unit,
		CostPerUnit: req.CostPerUnit,
		Supplier:    req.Supplier,
		Notes:       req.Notes,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMissingFields) || errors.Is(err, ErrNegativeCost) || errors.Is(err, ErrMissingUnit) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ing)
}

func (h *Handler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	items, err := h.service.List(c.Request.Context(), c.GetString("organizationID"), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": items})
}

func (h *Handler) Get(c *gin.Context) {
	ing, err := h.service.Get(c.Request.Context(), c.GetString("organizationID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ing)
}

func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	ing, err := h.service.Update(c.Request.Context(), c.GetString("organizationID"), c.Param("id"), UpdateInput{
		Name:        req.Name,
		Category:    req.Category,
		CostPerUnit: req.CostPerUnit,
		Supplier:    req.Supplier,
		Notes:       req.Notes,
		IsActive:    active,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrNegativeCost):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ing)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.GetString("organizationID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
