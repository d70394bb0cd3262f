package dto

import (
	"time"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RatesResponse is the currently active rate and symbol table.
type RatesResponse struct {
	Rates        map[string]decimal.Decimal `json:"rates"`
	Symbols      map[string]string          `json:"symbols"`
	BaseCurrency string                     `json:"baseCurrency"`
	LastUpdated  time.Time                  `json:"lastUpdated"`
}

// ToRatesResponse converts a domain.RatesSnapshot to RatesResponse DTO
func ToRatesResponse(s domain.RatesSnapshot) RatesResponse {
	return RatesResponse{
		Rates:        s.Rates,
		Symbols:      s.Symbols,
		BaseCurrency: s.BaseCurrency,
		LastUpdated:  s.LastUpdated.UTC(),
	}
}

// ConvertRequest asks for an amount to be converted between two currencies.
type ConvertRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	From   string           `json:"from" binding:"required,currencycode"`
	To     string           `json:"to" binding:"required,currencycode"`
}

// ConvertedAmount is one side of a conversion.
type ConvertedAmount struct {
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

// ConvertResponse is the result of a conversion.
type ConvertResponse struct {
	From         ConvertedAmount `json:"from"`
	To           ConvertedAmount `json:"to"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// ToConvertResponse converts a domain.Conversion to ConvertResponse DTO
func ToConvertResponse(c *domain.Conversion) ConvertResponse {
	return ConvertResponse{
		From: ConvertedAmount{
			Currency:  c.FromCurrency,
			Amount:    c.FromAmount,
			Formatted: c.FromFormatted,
		},
		To: ConvertedAmount{
			Currency:  c.ToCurrency,
			Amount:    c.ToAmount,
			Formatted: c.ToFormatted,
		},
		ExchangeRate: c.ExchangeRate,
	}
}

// OrderLineItemRequest is one line of an order priced in the order currency.
type OrderLineItemRequest struct {
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Quantity int64            `json:"quantity" binding:"min=0"`
}

// OrderTotalsRequest asks for the totals of an order in one currency.
type OrderTotalsRequest struct {
	Currency string                 `json:"currency" binding:"required,currencycode"`
	Items    []OrderLineItemRequest `json:"items" binding:"required,dive"`
}

// ToDomainOrderLineItems converts request lines to domain line items
func (r OrderTotalsRequest) ToDomainOrderLineItems() []domain.OrderLineItem {
	items := make([]domain.OrderLineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.OrderLineItem{Price: *item.Price, Quantity: item.Quantity}
	}
	return items
}

// OrderTotalsResponse is the computed order totals.
type OrderTotalsResponse struct {
	Currency     string          `json:"currency"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	NPRSubtotal  decimal.Decimal `json:"nprSubtotal"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// ToOrderTotalsResponse converts domain.OrderTotals to OrderTotalsResponse DTO
func ToOrderTotalsResponse(t *domain.OrderTotals) OrderTotalsResponse {
	return OrderTotalsResponse{
		Currency:     t.Currency,
		Subtotal:     t.Subtotal,
		NPRSubtotal:  t.NPRSubtotal,
		ExchangeRate: t.ExchangeRate,
	}
}
