package modules

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

// List returns every known module together with whether it is enabled for
// the caller's organization, plus the merged capabilities.
func (h *Handler) List(c *gin.Context) {
	orgID := c.GetString("organizationID")

	enabled, err := h.service.Enabled(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	caps, err := h.service.CapabilitiesFor(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	enabledSet := make(map[Module]bool, len(enabled))
	for _, m := range enabled {
		enabledSet[m] = true
	}

	type moduleStatus struct {
		Module  Module `json:"module"`
		Enabled bool   `json:"enabled"`
	}
	statuses := make([]moduleStatus, 0, len(All()))
	for _, m := range All() {
		statuses = append(statuses, moduleStatus{Module: m, Enabled: enabledSet[m]})
	}

	c.JSON(http.StatusOK, gin.H{"modules": statuses, "capabilities": caps})
}

func (h *Handler) Enable(c *gin.Context) {
	m := Module(c.Param("module"))
	err := h.service.Enable(c.Request.Context(), c.GetString("organizationID"), m)
	if err != nil {
		writeToggleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"module": m, "enabled": true})
}

func (h *Handler) Disable(c *gin.Context) {
	m := Module(c.Param("module"))
	err := h.service.Disable(c.Request.Context(), c.GetString("organizationID"), m)
	if err != nil {
		writeToggleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"module": m, "enabled": false})
}

func writeToggleError(c *gin.Context, err error) {
	if errors.Is(err, ErrUnknownModule) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
