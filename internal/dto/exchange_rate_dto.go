package dto

import (
	"time"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertExchangeRateRequest defines the structure for creating or replacing a persisted rate.
type UpsertExchangeRateRequest struct {
	RateToNPR *decimal.Decimal `json:"rateToNPR" binding:"required"`
	Country   string           `json:"country" binding:"required,max=100"`
	Symbol    string           `json:"symbol" binding:"max=8"`
	IsActive  *bool            `json:"isActive"` // defaults to true
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Country       string          `json:"country"`
	Symbol        string          `json:"symbol,omitempty"`
	RateToNPR     decimal.Decimal `json:"rateToNPR"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode:  rate.CurrencyCode,
		Country:       rate.Country,
		Symbol:        rate.Symbol,
		RateToNPR:     rate.RateToNPR,
		IsActive:      rate.IsActive,
		CreatedAt:     rate.CreatedAt,
		CreatedBy:     rate.CreatedBy,
		LastUpdatedAt: rate.LastUpdatedAt,
		LastUpdatedBy: rate.LastUpdatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
