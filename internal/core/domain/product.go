package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is the subset of a catalogue product needed for price resolution.
type Product struct {
	ProductID string `json:"productID"`
	Name      string `json:"name"`
	// Price is the deprecated NPR base price, kept alongside CurrencyPrices.
	Price          decimal.Decimal        `json:"price"`
	ComparePrice   *decimal.Decimal       `json:"comparePrice,omitempty"`
	CurrencyPrices []ProductCurrencyPrice `json:"currencyPrices"`
	AuditFields
}

// ProductCurrencyPrice is a per-country price override for a product.
type ProductCurrencyPrice struct {
	CurrencyPriceID string           `json:"currencyPriceID"`
	ProductID       string           `json:"productID"`
	Country         string           `json:"country"`
	Currency        string           `json:"currency"`
	Symbol          string           `json:"symbol"`
	Price           decimal.Decimal  `json:"price"`
	ComparePrice    *decimal.Decimal `json:"comparePrice,omitempty"`
	IsActive        bool             `json:"isActive"`
	AuditFields
}

// IsNepalLabeled reports whether the override is the one holding the product's NPR price.
func (p ProductCurrencyPrice) IsNepalLabeled() bool {
	c := strings.ToLower(strings.TrimSpace(p.Country))
	return c == "nepal" || c == "npr"
}
