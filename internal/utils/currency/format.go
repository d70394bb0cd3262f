package currency

import (
	"math"
	"strings"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var maxGroupedByPrinter = decimal.NewFromInt(math.MaxInt64)

// FormatPrice renders amount with thousands separators and two decimals.
// NPR, and any currency without a known symbol, is written "<symbol or code> 1,234.56";
// everything else gets its symbol glued on, e.g. "$1,234.56".
// A negative amount carries its sign ahead of the symbol: "-$1,234.56".
func (t *RateTable) FormatPrice(amount decimal.Decimal, currency string) string {
	code := NormalizeCode(currency)

	rounded := amount.Round(amountPlaces)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	formatted := FormatAmount(rounded)

	symbol, ok := t.Symbol(code)
	switch {
	case !ok:
		return sign + code + " " + formatted
	case code == domain.BaseCurrency:
		return sign + symbol + " " + formatted
	default:
		return sign + symbol + formatted
	}
}

// FormatAmount groups thousands and fixes two decimal places, e.g. "1,234.50".
// The digits come from the decimal itself, never from a float.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(amountPlaces)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole, frac, _ := strings.Cut(rounded.StringFixed(amountPlaces), ".")
	return sign + groupThousands(rounded.Truncate(0), whole) + "." + frac
}

// groupThousands inserts separators into the non-negative integer part.
// Values that fit an int64 go through the English printer; wider ones are
// grouped from their digit string.
func groupThousands(whole decimal.Decimal, digits string) string {
	if whole.LessThanOrEqual(maxGroupedByPrinter) {
		return message.NewPrinter(language.English).Sprintf("%d", whole.IntPart())
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
