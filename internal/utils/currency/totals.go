package currency

import (
	"context"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateOrderTotals sums items priced in currency and derives the NPR subtotal
// and the currency-to-NPR rate. Subtotal and NPR subtotal are rounded to 2 places
// independently; the rate to 4. Inputs are not validated here.
func (t *RateTable) CalculateOrderTotals(ctx context.Context, items []domain.OrderLineItem, currency string) domain.OrderTotals {
	code := NormalizeCode(currency)

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	subtotal = subtotal.Round(amountPlaces)

	nprSubtotal := subtotal
	if code != domain.BaseCurrency {
		nprSubtotal = t.ConvertToNPR(ctx, subtotal, code).Round(amountPlaces)
	}

	return domain.OrderTotals{
		Currency:     code,
		Subtotal:     subtotal,
		NPRSubtotal:  nprSubtotal,
		ExchangeRate: t.GetExchangeRate(ctx, code, domain.BaseCurrency).Round(ratePlaces),
	}
}
