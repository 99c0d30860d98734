package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diffen77/gastropartner-sub000/internal/modules"
)

// RequireModule blocks requests from organizations that have not enabled m.
func RequireModule(service *modules.Service, m modules.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := c.GetString("organizationID")
		if orgID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "organization missing"})
			return
		}

		on, err := service.IsEnabled(c.Request.Context(), orgID, m)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !on {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "module " + string(m) + " is not enabled"})
			return
		}

		c.Next()
	}
}
