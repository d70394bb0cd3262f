package services

import (
	"context"
	"fmt"

	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/utils/currency"
	"github.com/shopspring/decimal"
)

// CurrencyService converts and formats amounts against the active rate table.
type CurrencyService struct {
	BaseService
	rates portssvc.RateSource
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(rates portssvc.RateSource) *CurrencyService {
	return &CurrencyService{rates: rates}
}

var _ portssvc.CurrencySvc = (*CurrencyService)(nil)

// GetRates returns the active rate and symbol tables.
func (s *CurrencyService) GetRates(ctx context.Context) domain.RatesSnapshot {
	table := s.rates.Current()
	return domain.RatesSnapshot{
		Rates:        table.Rates(),
		Symbols:      table.Symbols(),
		BaseCurrency: domain.BaseCurrency,
		LastUpdated:  s.rates.LastUpdated(),
	}
}

// Convert converts amount from one supported currency to another, going through NPR
// when neither side is NPR.
func (s *CurrencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	table := s.rates.Current()
	from, to = currency.NormalizeCode(from), currency.NormalizeCode(to)

	rate, err := table.CrossRate(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to %s: %w", from, to, err)
	}

	var converted decimal.Decimal
	switch {
	case from == to:
		converted = amount
	case from == domain.BaseCurrency:
		converted, err = table.FromNPR(amount, to)
	case to == domain.BaseCurrency:
		converted, err = table.ToNPR(amount, from)
	default:
		var npr decimal.Decimal
		npr, err = table.ToNPR(amount, from)
		if err == nil {
			converted, err = table.FromNPR(npr, to)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to %s: %w", from, to, err)
	}

	return &domain.Conversion{
		FromCurrency:  from,
		FromAmount:    amount,
		FromFormatted: table.FormatPrice(amount, from),
		ToCurrency:    to,
		ToAmount:      converted,
		ToFormatted:   table.FormatPrice(converted, to),
		ExchangeRate:  rate,
	}, nil
}

// CalculateOrderTotals validates order lines and delegates to the rate table.
func (s *CurrencyService) CalculateOrderTotals(ctx context.Context, items []domain.OrderLineItem, currencyCode string) (*domain.OrderTotals, error) {
	table := s.rates.Current()
	code := currency.NormalizeCode(currencyCode)
	if !table.Supports(code) {
		return nil, apperrors.NewUnsupportedCurrencyError(code)
	}
	for i, item := range items {
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("%w: item %d has a negative price", apperrors.ErrValidation, i)
		}
		if item.Quantity < 0 {
			return nil, fmt.Errorf("%w: item %d has a negative quantity", apperrors.ErrValidation, i)
		}
	}

	totals := table.CalculateOrderTotals(ctx, items, code)
	return &totals, nil
}
