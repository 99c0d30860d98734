package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diffen77/gastropartner-sub000/internal/vat"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type itemRequest struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	SellingPrice      float64 `json:"selling_price"`
	RecipeID          *string `json:"recipe_id"`
	TargetFoodCostPct float64 `json:"target_food_cost_percentage"`
	VATRate           string  `json:"vat_rate"`
	VATMode           string  `json:"vat_mode"`
	IsActive          *bool   `json:"is_active"`
}

func (req itemRequest) toInput() Input {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return Input{
		Name:              req.Name,
		Category:          req.Category,
		SellingPrice:      req.SellingPrice,
		RecipeID:          req.RecipeID,
		TargetFoodCostPct: req.TargetFoodCostPct,
		VATRate:           vat.Rate(req.VATRate),
		VATMode:           vat.Mode(req.VATMode),
		IsActive:          active,
	}
}

func writeServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidTarget),
		errors.Is(err, ErrInvalidVAT),
		errors.Is(err, ErrInvalidFilename):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *Handler) Create(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.service.Create(c.Request.Context(), c.GetString("organizationID"), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	items, err := h.service.List(c.Request.Context(), c.GetString("organizationID"), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu_items": items})
}

func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.GetString("organizationID"), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) Update(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.GetString("organizationID"), c.Param("id"), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.GetString("organizationID"), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Margins(c *gin.Context) {
	margins, err := h.service.Margins(c.Request.Context(), c.GetString("organizationID"), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, margins)
}

func (h *Handler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	item, err := h.service.UploadImage(
		c.Request.Context(),
		c.GetString("organizationID"),
		c.Param("id"),
		fileHeader.Filename,
		file,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
