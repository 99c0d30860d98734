package analytics

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

// Recompute rebuilds the caller's margin snapshot from current menu data.
func (h *Handler) Recompute(c *gin.Context) {
	snapshot, err := h.service.RecomputeSnapshot(c.Request.Context(), c.GetString("organizationID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusOK, gin.H{"status": "skipped", "reason": "no active menu items"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Get returns the stored snapshot.
func (h *Handler) Get(c *gin.Context) {
	snapshot, err := h.service.Snapshot(c.Request.Context(), c.GetString("organizationID"))
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no data available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
