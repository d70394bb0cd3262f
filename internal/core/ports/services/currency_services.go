package services

import (
	"context"
	"time"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/nepalicrafts/storefront_api/internal/dto"
	"github.com/nepalicrafts/storefront_api/internal/utils/currency"
	"github.com/shopspring/decimal"
)

// RateSource supplies the rate table currently in force.
type RateSource interface {
	// Current returns the active, immutable rate table.
	Current() *currency.RateTable

	// LastUpdated reports when the active table was built.
	LastUpdated() time.Time

	// Refresh rebuilds the table from persisted rates.
	Refresh(ctx context.Context) error
}

// CurrencySvc defines conversion and formatting operations for the storefront
type CurrencySvc interface {
	// GetRates returns the active rate and symbol tables.
	GetRates(ctx context.Context) domain.RatesSnapshot

	// Convert converts amount between two supported currencies.
	// Unsupported codes yield apperrors.ErrUnsupportedCurrency.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error)

	// CalculateOrderTotals sums order lines priced in currencyCode.
	CalculateOrderTotals(ctx context.Context, items []domain.OrderLineItem, currencyCode string) (*domain.OrderTotals, error)
}

// ExchangeRateReaderSvc defines read operations for persisted exchange rates
type ExchangeRateReaderSvc interface {
	// ListExchangeRates retrieves every persisted rate, active or not.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for persisted exchange rates
type ExchangeRateWriterSvc interface {
	// UpsertExchangeRate creates or replaces the persisted rate for currencyCode.
	UpsertExchangeRate(ctx context.Context, currencyCode string, req dto.UpsertExchangeRateRequest, userID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
