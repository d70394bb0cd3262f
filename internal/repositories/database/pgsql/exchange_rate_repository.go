package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	portsrepo "github.com/nepalicrafts/storefront_api/internal/core/ports/repositories"
	"github.com/nepalicrafts/storefront_api/internal/models"
	"github.com/nepalicrafts/storefront_api/internal/utils/mapping"
)

const exchangeRateColumns = `currency_code, country, symbol, rate_to_npr, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository stores exchange rates in the exchange_rates table.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.CurrencyCode, &m.Country, &m.Symbol, &m.RateToNPR, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// ListExchangeRates retrieves persisted rates ordered by currency code.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE ($1 = FALSE OR is_active)
		ORDER BY currency_code;`

	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// FindExchangeRateByCode retrieves the persisted rate for one currency.
func (r *PgxExchangeRateRepository) FindExchangeRateByCode(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1;`

	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate for " + currencyCode + " not found")
		}
		return nil, fmt.Errorf("failed to find exchange rate %s: %w", currencyCode, err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// SaveExchangeRate inserts or updates the rate for rate.CurrencyCode.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (currency_code) DO UPDATE SET
			country = EXCLUDED.country,
			symbol = EXCLUDED.symbol,
			rate_to_npr = EXCLUDED.rate_to_npr,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode, m.Country, m.Symbol, m.RateToNPR, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate %s: %w", m.CurrencyCode, err)
	}
	return nil
}
