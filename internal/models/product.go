package models

import (
	"github.com/shopspring/decimal"
)

// Product is a row of products, restricted to the pricing columns.
type Product struct {
	ProductID    string              `db:"product_id"`
	Name         string              `db:"name"`
	Price        decimal.Decimal     `db:"price"` // deprecated NPR base price
	ComparePrice decimal.NullDecimal `db:"compare_price"`
	AuditFields
}

// ProductCurrencyPrice is a row of product_currency_prices.
type ProductCurrencyPrice struct {
	CurrencyPriceID string              `db:"currency_price_id"`
	ProductID       string              `db:"product_id"`
	Country         string              `db:"country"`
	Currency        string              `db:"currency"`
	Symbol          string              `db:"symbol"`
	Price           decimal.Decimal     `db:"price"`
	ComparePrice    decimal.NullDecimal `db:"compare_price"`
	IsActive        bool                `db:"is_active"`
	AuditFields
}
