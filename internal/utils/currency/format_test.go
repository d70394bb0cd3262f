package currency_test

import (
	"testing"

	"github.com/nepalicrafts/storefront_api/internal/utils/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	table := currency.DefaultRateTable()

	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"1234.5", "NPR", "NPR 1,234.50"},
		{"0", "EUR", "€0.00"},
		{"999999.999", "GBP", "£1,000,000.00"},
		{"12.345", "INR", "₹12.35"},
		{"1500", "jpy", "¥1,500.00"},
		{"1234.5", "XYZ", "XYZ 1,234.50"},
		{"-1234.5", "USD", "-$1,234.50"},
		{"-1234.5", "NPR", "-NPR 1,234.50"},
		{"-0.5", "XYZ", "-XYZ 0.50"},
		{"-0.001", "EUR", "€0.00"},
		{"90071992547409.93", "USD", "$90,071,992,547,409.93"},
	}
	for _, tt := range tests {
		t.Run(tt.currency+" "+tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, table.FormatPrice(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.10", currency.FormatAmount(decimal.RequireFromString("0.1")))
	assert.Equal(t, "12,345,678.90", currency.FormatAmount(decimal.RequireFromString("12345678.9")))
	assert.Equal(t, "-1,000.00", currency.FormatAmount(decimal.NewFromInt(-1000)))
	assert.Equal(t, "0.00", currency.FormatAmount(decimal.RequireFromString("-0.004")))
}

func TestFormatAmount_LargeValuesKeepEveryDigit(t *testing.T) {
	tests := map[string]string{
		"90071992547409.93":           "90,071,992,547,409.93",
		"12345678901234567.89":        "12,345,678,901,234,567.89",
		"999999999999999999.99":       "999,999,999,999,999,999.99",
		"9223372036854775807.5":       "9,223,372,036,854,775,807.50",
		"123456789012345678901234.56": "123,456,789,012,345,678,901,234.56",
		"-12345678901234567.89":       "-12,345,678,901,234,567.89",
	}
	for in, want := range tests {
		assert.Equal(t, want, currency.FormatAmount(decimal.RequireFromString(in)), in)
	}
}
