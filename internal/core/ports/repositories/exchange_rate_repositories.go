package repositories

import (
	"context"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
)

// ExchangeRateReader defines read operations for persisted exchange rates
type ExchangeRateReader interface {
	// ListExchangeRates retrieves persisted rates ordered by currency code.
	ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error)

	// FindExchangeRateByCode retrieves the persisted rate for one currency.
	FindExchangeRateByCode(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for persisted exchange rates
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts or updates the rate for rate.CurrencyCode.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
