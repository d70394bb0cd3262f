package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports liveness and when the active exchange-rate table was built.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func getHealth(rates portssvc.RateSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "OK",
			"ratesLastUpdated": rates.LastUpdated().UTC(),
		})
	}
}

// registerHealthRoutes registers the unauthenticated '/health' route
func registerHealthRoutes(r *gin.Engine, rates portssvc.RateSource) {
	r.GET("/health", getHealth(rates))
}
