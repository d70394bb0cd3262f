// Package currency holds the NPR-anchored rate and symbol tables and the
// conversion, formatting and order-total functions built on them.
package currency

import (
	"strings"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Built-in rates: units of each currency worth one NPR.
var defaultRates = map[string]string{
	"NPR": "1",
	"USD": "0.0075",
	"EUR": "0.0069",
	"GBP": "0.0059",
	"AUD": "0.0114",
	"CAD": "0.0102",
	"INR": "0.625",
	"JPY": "1.12",
	"CNY": "0.054",
}

var defaultSymbols = map[string]string{
	"NPR": "NPR",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "$",
	"CAD": "$",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
}

// RateTable is an immutable mapping from currency code to NPR-relative rate and
// display symbol. NPR is always present with rate 1.
type RateTable struct {
	rates   map[string]decimal.Decimal
	symbols map[string]string
}

// NewRateTable copies rates and symbols into a new table. Codes are normalised,
// non-positive rates are dropped and NPR is pinned to 1.
func NewRateTable(rates map[string]decimal.Decimal, symbols map[string]string) *RateTable {
	t := &RateTable{
		rates:   make(map[string]decimal.Decimal, len(rates)+1),
		symbols: make(map[string]string, len(symbols)+1),
	}
	for code, rate := range rates {
		if !rate.IsPositive() {
			continue
		}
		t.rates[NormalizeCode(code)] = rate
	}
	for code, symbol := range symbols {
		t.symbols[NormalizeCode(code)] = symbol
	}
	t.rates[domain.BaseCurrency] = decimal.NewFromInt(1)
	if _, ok := t.symbols[domain.BaseCurrency]; !ok {
		t.symbols[domain.BaseCurrency] = domain.BaseCurrency
	}
	return t
}

// DefaultRateTable returns the built-in static table.
func DefaultRateTable() *RateTable {
	rates := make(map[string]decimal.Decimal, len(defaultRates))
	for code, r := range defaultRates {
		rates[code] = decimal.RequireFromString(r)
	}
	return NewRateTable(rates, defaultSymbols)
}

// Overlay returns a new table with the persisted rates applied on top of t.
// An active row sets the rate; an inactive row removes the code, built-in or
// not, so a deactivated currency stops being supported. Rows for NPR are ignored.
func (t *RateTable) Overlay(persisted []domain.ExchangeRate) *RateTable {
	rates := t.Rates()
	symbols := t.Symbols()
	for _, er := range persisted {
		code := NormalizeCode(er.CurrencyCode)
		if code == domain.BaseCurrency {
			continue
		}
		if !er.IsActive {
			delete(rates, code)
			delete(symbols, code)
			continue
		}
		rates[code] = er.RateToNPR
		if er.Symbol != "" {
			symbols[code] = er.Symbol
		}
	}
	return NewRateTable(rates, symbols)
}

// Rate returns the NPR-relative rate for code.
func (t *RateTable) Rate(code string) (decimal.Decimal, bool) {
	r, ok := t.rates[NormalizeCode(code)]
	return r, ok
}

// Symbol returns the display symbol for code, and false when none is known.
func (t *RateTable) Symbol(code string) (string, bool) {
	s, ok := t.symbols[NormalizeCode(code)]
	return s, ok
}

// Supports reports whether code has a rate.
func (t *RateTable) Supports(code string) bool {
	_, ok := t.Rate(code)
	return ok
}

// Rates returns a copy of the rate map.
func (t *RateTable) Rates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t.rates))
	for k, v := range t.rates {
		out[k] = v
	}
	return out
}

// Symbols returns a copy of the symbol map.
func (t *RateTable) Symbols() map[string]string {
	out := make(map[string]string, len(t.symbols))
	for k, v := range t.symbols {
		out[k] = v
	}
	return out
}

// NormalizeCode trims and upper-cases a currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
