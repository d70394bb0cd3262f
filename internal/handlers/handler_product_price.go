package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/dto"
	"github.com/nepalicrafts/storefront_api/internal/middleware"
)

type productPriceHandler struct {
	pricingService portssvc.ProductPriceAdminSvc
}

func newProductPriceHandler(ps portssvc.ProductPriceAdminSvc) *productPriceHandler {
	return &productPriceHandler{pricingService: ps}
}

// registerProductPriceRoutes registers the admin override routes of a product.
func registerProductPriceRoutes(rg *gin.RouterGroup, pricingService portssvc.ProductPriceAdminSvc) {
	h := newProductPriceHandler(pricingService)

	prices := rg.Group("/products/:productId/currency-prices")
	{
		prices.GET("", h.listCurrencyPrices)
		prices.PUT("", h.upsertCurrencyPrice)
		prices.DELETE("/:country", h.deactivateCurrencyPrice)
	}
}

// listCurrencyPrices godoc
// @Summary List a product's currency prices
// @Description Lists every per-country override of a product, active first (admin operation)
// @Tags admin
// @Produce  json
// @Param   productId path string true "Product ID"
// @Success 200 {array} dto.ProductCurrencyPriceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 500 {object} map[string]string "Failed to list currency prices"
// @Security BearerAuth
// @Router /admin/products/{productId}/currency-prices [get]
func (h *productPriceHandler) listCurrencyPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", c.Param("productId")))

	prices, err := h.pricingService.ListProductCurrencyPrices(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currency prices")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductCurrencyPriceResponse(prices))
}

// upsertCurrencyPrice godoc
// @Summary Create or replace a country override
// @Description Sets the price a product sells for in one country (admin operation)
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   productId path string true "Product ID"
// @Param   price body dto.UpsertProductCurrencyPriceRequest true "Override details"
// @Success 200 {object} dto.ProductCurrencyPriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Concurrent save for the same country"
// @Failure 500 {object} map[string]string "Failed to save currency price"
// @Security BearerAuth
// @Router /admin/products/{productId}/currency-prices [put]
func (h *productPriceHandler) upsertCurrencyPrice(c *gin.Context) {
	productID := c.Param("productId")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))

	var req dto.UpsertProductCurrencyPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertCurrencyPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.pricingService.UpsertProductCurrencyPrice(c.Request.Context(), productID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save currency price")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductCurrencyPriceResponse(saved))
}

// deactivateCurrencyPrice godoc
// @Summary Deactivate a country override
// @Description Turns off the active override of a product for one country (admin operation)
// @Tags admin
// @Param   productId path string true "Product ID"
// @Param   country path string true "Country, exactly as stored"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "No active override for the country"
// @Failure 500 {object} map[string]string "Failed to deactivate currency price"
// @Security BearerAuth
// @Router /admin/products/{productId}/currency-prices/{country} [delete]
func (h *productPriceHandler) deactivateCurrencyPrice(c *gin.Context) {
	productID := c.Param("productId")
	country := c.Param("country")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("product_id", productID),
		slog.String("country", country),
	)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.pricingService.DeactivateProductCurrencyPrice(c.Request.Context(), productID, country, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate currency price")
		return
	}

	logger.Info("Currency price deactivated")
	c.Status(http.StatusNoContent)
}
