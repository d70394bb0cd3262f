package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource tells where a resolved amount came from.
type PriceSource string

const (
	// PriceSourceOverride means a ProductCurrencyPrice row supplied the amount.
	PriceSourceOverride PriceSource = "override"
	// PriceSourceLegacyBase means the deprecated Product.Price supplied the amount.
	PriceSourceLegacyBase PriceSource = "legacy_base"
)

// ProductPrice is the displayable price of a product for one country and currency.
type ProductPrice struct {
	ProductID      string           `json:"productID"`
	Country        string           `json:"country"`
	Price          decimal.Decimal  `json:"price"`
	ComparePrice   *decimal.Decimal `json:"comparePrice,omitempty"`
	Currency       string           `json:"currency"`
	Symbol         string           `json:"symbol"`
	NPRPrice       decimal.Decimal  `json:"nprPrice"`
	ExchangeRate   decimal.Decimal  `json:"exchangeRate"`
	PriceSource    PriceSource      `json:"priceSource"`
	NPRPriceSource PriceSource      `json:"nprPriceSource"`
}

// OrderLineItem is one priced line of an order, already in the order currency.
type OrderLineItem struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// OrderTotals is the outcome of summing order lines in one currency.
type OrderTotals struct {
	Currency     string          `json:"currency"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	NPRSubtotal  decimal.Decimal `json:"nprSubtotal"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// Conversion is the result of converting an amount between two currencies.
type Conversion struct {
	FromCurrency  string          `json:"fromCurrency"`
	FromAmount    decimal.Decimal `json:"fromAmount"`
	FromFormatted string          `json:"fromFormatted"`
	ToCurrency    string          `json:"toCurrency"`
	ToAmount      decimal.Decimal `json:"toAmount"`
	ToFormatted   string          `json:"toFormatted"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
}

// RatesSnapshot is the rate and symbol table currently in force.
type RatesSnapshot struct {
	Rates        map[string]decimal.Decimal `json:"rates"`
	Symbols      map[string]string          `json:"symbols"`
	BaseCurrency string                     `json:"baseCurrency"`
	LastUpdated  time.Time                  `json:"lastUpdated"`
}
