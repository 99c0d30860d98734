package org

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

func writeServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMissingName), errors.Is(err, ErrInvalidStatus):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// Current returns the caller's own organization.
func (h *Handler) Current(c *gin.Context) {
	o, err := h.service.Get(c.Request.Context(), c.GetString("organizationID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *Handler) OnboardingStatus(c *gin.Context) {
	status := h.service.OnboardingStatusFor(c.Request.Context(), c.GetString("organizationID"))
	c.JSON(http.StatusOK, gin.H{"onboarding_status": status})
}

func (h *Handler) SetOnboardingStatus(c *gin.Context) {
	var req struct {
		Status OnboardingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetOnboardingStatus(c.Request.Context(), c.GetString("organizationID"), req.Status); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"onboarding_status": req.Status})
}

func (h *Handler) SaveWizard(c *gin.Context) {
	var state WizardState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SaveWizard(c.Request.Context(), c.GetString("organizationID"), state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ResumeWizard(c *gin.Context) {
	state, err := h.service.ResumeWizard(c.Request.Context(), c.GetString("organizationID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if state == nil {
		c.JSON(http.StatusOK, gin.H{"wizard": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wizard": state})
}

func (h *Handler) DiscardWizard(c *gin.Context) {
	if err := h.service.DiscardWizard(c.Request.Context(), c.GetString("organizationID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
