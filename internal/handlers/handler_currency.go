package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/dto"
	"github.com/nepalicrafts/storefront_api/internal/middleware"
)

// currencyHandler serves the public storefront currency endpoints.
type currencyHandler struct {
	currencyService portssvc.CurrencySvc
	pricingService  portssvc.ProductPriceResolverSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvc, ps portssvc.ProductPriceResolverSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		pricingService:  ps,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvc, pricingService portssvc.ProductPriceResolverSvc) {
	h := newCurrencyHandler(currencyService, pricingService)

	currency := rg.Group("/currency")
	{
		currency.GET("/rates", h.getRates)
		currency.POST("/convert", h.convert)
		currency.GET("/product/:productId", h.getProductPrice)
		currency.POST("/order-totals", h.calculateOrderTotals)
	}
}

// getRates godoc
// @Summary Get exchange rates
// @Description Returns the active NPR-relative rate table and currency symbols
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Router /currency/rates [get]
func (h *currencyHandler) getRates(c *gin.Context) {
	snapshot := h.currencyService.GetRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRatesResponse(snapshot))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between two supported currencies through NPR
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Amount and currencies"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input or unsupported currency"
// @Failure 500 {object} map[string]string "Failed to convert currency"
// @Router /currency/convert [post]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	conversion, err := h.currencyService.Convert(c.Request.Context(), *req.Amount, req.From, req.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to convert currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(conversion))
}

// getProductPrice godoc
// @Summary Get a product's price for a country
// @Description Resolves what a customer in the given country pays in the given currency
// @Tags currency
// @Produce  json
// @Param   productId path string true "Product ID"
// @Param   country query string true "Customer country, matched exactly against overrides"
// @Param   currency query string true "Currency code (3 letters)"
// @Success 200 {object} dto.ProductPriceResponse
// @Failure 400 {object} map[string]string "Missing parameters or unsupported currency"
// @Failure 404 {object} map[string]string "Product not found or has no price"
// @Failure 500 {object} map[string]string "Failed to resolve product price"
// @Router /currency/product/{productId} [get]
func (h *currencyHandler) getProductPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productId")

	var query dto.ProductPriceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query for GetProductPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "country and currency query parameters are required"})
		return
	}

	logger = logger.With(
		slog.String("product_id", productID),
		slog.String("country", query.Country),
		slog.String("currency", query.Currency),
	)

	price, err := h.pricingService.GetProductPrice(c.Request.Context(), productID, query.Country, query.Currency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve product price")
		return
	}

	logger.Debug("Product price resolved", slog.String("price_source", string(price.PriceSource)))
	c.JSON(http.StatusOK, dto.ToProductPriceResponse(price))
}

// calculateOrderTotals godoc
// @Summary Calculate order totals
// @Description Sums order lines priced in one currency and reports the NPR equivalent
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   order body dto.OrderTotalsRequest true "Order currency and lines"
// @Success 200 {object} dto.OrderTotalsResponse
// @Failure 400 {object} map[string]string "Invalid input or unsupported currency"
// @Failure 500 {object} map[string]string "Failed to calculate order totals"
// @Router /currency/order-totals [post]
func (h *currencyHandler) calculateOrderTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OrderTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateOrderTotals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	totals, err := h.currencyService.CalculateOrderTotals(c.Request.Context(), req.ToDomainOrderLineItems(), req.Currency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate order totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderTotalsResponse(totals))
}
