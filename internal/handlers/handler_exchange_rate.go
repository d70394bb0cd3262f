package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/dto"
	"github.com/nepalicrafts/storefront_api/internal/middleware"
)

// exchangeRateHandler handles admin requests on persisted exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.listExchangeRates)
		rates.PUT("/:code", h.upsertExchangeRate)
	}
}

// listExchangeRates godoc
// @Summary List persisted exchange rates
// @Description Lists every persisted rate, active or not (admin operation)
// @Tags admin
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Security BearerAuth
// @Router /admin/exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// upsertExchangeRate godoc
// @Summary Create or replace an exchange rate
// @Description Stores the NPR-relative rate for a currency and reloads the active table (admin operation)
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   rate body dto.UpsertExchangeRateRequest true "Rate details"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 500 {object} map[string]string "Failed to save exchange rate"
// @Security BearerAuth
// @Router /admin/exchange-rates/{code} [put]
func (h *exchangeRateHandler) upsertExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.UpsertExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("currency_code", code))
	rate, err := h.exchangeRateService.UpsertExchangeRate(c.Request.Context(), code, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save exchange rate")
		return
	}

	logger.Info("Exchange rate saved", slog.String("rate_to_npr", rate.RateToNPR.String()))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
