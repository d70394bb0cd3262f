package currency

import (
	"context"
	"log/slog"

	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/nepalicrafts/storefront_api/internal/middleware"
	"github.com/shopspring/decimal"
)

const (
	amountPlaces = 2
	ratePlaces   = 4
)

// FromNPR converts an NPR amount into currency to, rounded to 2 places.
func (t *RateTable) FromNPR(amount decimal.Decimal, to string) (decimal.Decimal, error) {
	rate, ok := t.Rate(to)
	if !ok {
		return decimal.Zero, apperrors.NewUnsupportedCurrencyError(NormalizeCode(to))
	}
	return amount.Mul(rate).Round(amountPlaces), nil
}

// ToNPR converts an amount in currency from into NPR, rounded to 2 places.
// NPR amounts are returned untouched.
func (t *RateTable) ToNPR(amount decimal.Decimal, from string) (decimal.Decimal, error) {
	code := NormalizeCode(from)
	if code == domain.BaseCurrency {
		return amount, nil
	}
	rate, ok := t.Rate(code)
	if !ok {
		return decimal.Zero, apperrors.NewUnsupportedCurrencyError(code)
	}
	return amount.Div(rate).Round(amountPlaces), nil
}

// CrossRate returns how many units of to one unit of from buys.
// Identical codes always yield 1, even when unsupported.
func (t *RateTable) CrossRate(from, to string) (decimal.Decimal, error) {
	from, to = NormalizeCode(from), NormalizeCode(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	fromRate, ok := t.Rate(from)
	if !ok {
		return decimal.Zero, apperrors.NewUnsupportedCurrencyError(from)
	}
	toRate, ok := t.Rate(to)
	if !ok {
		return decimal.Zero, apperrors.NewUnsupportedCurrencyError(to)
	}
	switch {
	case from == domain.BaseCurrency:
		return toRate, nil
	case to == domain.BaseCurrency:
		return decimal.NewFromInt(1).Div(fromRate), nil
	default:
		return toRate.Div(fromRate), nil
	}
}

// ConvertFromNPR is FromNPR for display paths: an unsupported currency logs a
// warning and returns amount unchanged.
func (t *RateTable) ConvertFromNPR(ctx context.Context, amount decimal.Decimal, to string) decimal.Decimal {
	converted, err := t.FromNPR(amount, to)
	if err != nil {
		warnUnsupported(ctx, "ConvertFromNPR", to)
		return amount
	}
	return converted
}

// ConvertToNPR is ToNPR with the same identity fallback as ConvertFromNPR.
func (t *RateTable) ConvertToNPR(ctx context.Context, amount decimal.Decimal, from string) decimal.Decimal {
	converted, err := t.ToNPR(amount, from)
	if err != nil {
		warnUnsupported(ctx, "ConvertToNPR", from)
		return amount
	}
	return converted
}

// GetExchangeRate is CrossRate falling back to 1 when either side is unknown.
func (t *RateTable) GetExchangeRate(ctx context.Context, from, to string) decimal.Decimal {
	rate, err := t.CrossRate(from, to)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Exchange rate not found, using 1:1",
			slog.String("from", NormalizeCode(from)),
			slog.String("to", NormalizeCode(to)),
		)
		return decimal.NewFromInt(1)
	}
	return rate
}

func warnUnsupported(ctx context.Context, op, code string) {
	middleware.GetLoggerFromCtx(ctx).Warn("Unsupported currency, returning amount unchanged",
		slog.String("operation", op),
		slog.String("currency_code", NormalizeCode(code)),
	)
}
