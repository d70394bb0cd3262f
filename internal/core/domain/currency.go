package domain

import "github.com/shopspring/decimal"

// BaseCurrency is the currency every stored price is anchored to.
const BaseCurrency = "NPR"

// ExchangeRate is a persisted, admin-editable rate relative to NPR.
// RateToNPR is the number of units of CurrencyCode worth one NPR.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Country      string          `json:"country"`      // e.g., "United States"
	Symbol       string          `json:"symbol"`       // optional; empty keeps the built-in symbol
	RateToNPR    decimal.Decimal `json:"rateToNPR"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
