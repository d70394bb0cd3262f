package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of exchange_rates.
type ExchangeRate struct {
	CurrencyCode string          `db:"currency_code"` // Primary Key
	Country      string          `db:"country"`
	Symbol       sql.NullString  `db:"symbol"`
	RateToNPR    decimal.Decimal `db:"rate_to_npr"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
