package handlers

import (
	"fmt"
	"net/http"

	"github.com/financecrm/ai-service/internal/models"
	"github.com/gin-gonic/gin"
)

// PingHandler handles the /ping endpoint for health checks
// @Summary Health check
// @Description Liveness probe. Always answers with the same message.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is up"
// @Router /ping [get]
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Message: models.PingMessage,
	})
}

// RootHandler handles GET / for health checks
// @Summary Service status
// @Description Liveness probe served at the root path.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is running"
// @Router / [get]
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Message: models.RootMessage,
	})
}

// RegisterHealthRoutes mounts the health handler of the given variant
func RegisterHealthRoutes(router gin.IRoutes, variant models.Variant) error {
	switch variant {
	case models.VariantPing:
		router.GET(variant.Path(), PingHandler)
	case models.VariantRoot:
		router.GET(variant.Path(), RootHandler)
	default:
		return fmt.Errorf("no health route for variant %q", variant)
	}
	return nil
}
