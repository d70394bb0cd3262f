package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	portsrepo "github.com/nepalicrafts/storefront_api/internal/core/ports/repositories"
	"github.com/nepalicrafts/storefront_api/internal/models"
	"github.com/nepalicrafts/storefront_api/internal/utils/mapping"
)

// SQLSTATE codes surfaced by override writes.
const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
)

const currencyPriceColumns = `currency_price_id, product_id, country, currency, symbol, price, compare_price, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxProductPriceRepository reads products and stores their per-country price overrides.
type PgxProductPriceRepository struct {
	BaseRepository
}

// newPgxProductPriceRepository creates a new PgxProductPriceRepository.
func newPgxProductPriceRepository(pool *pgxpool.Pool) *PgxProductPriceRepository {
	return &PgxProductPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductPriceRepositoryFacade = (*PgxProductPriceRepository)(nil)

func scanCurrencyPrice(row pgx.Row) (models.ProductCurrencyPrice, error) {
	var m models.ProductCurrencyPrice
	err := row.Scan(
		&m.CurrencyPriceID, &m.ProductID, &m.Country, &m.Currency, &m.Symbol,
		&m.Price, &m.ComparePrice, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProductPriceRepository) queryCurrencyPrices(ctx context.Context, query string, args ...any) ([]models.ProductCurrencyPrice, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency prices: %w", err)
	}
	defer rows.Close()

	prices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ProductCurrencyPrice, error) {
		return scanCurrencyPrice(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency prices: %w", err)
	}
	return prices, nil
}

// FindProductWithActivePrices retrieves a product with its active overrides, newest first.
func (r *PgxProductPriceRepository) FindProductWithActivePrices(ctx context.Context, productID string) (*domain.Product, error) {
	productQuery := `
		SELECT product_id, name, price, compare_price, created_at, created_by, last_updated_at, last_updated_by
		FROM products
		WHERE product_id = $1;
	`
	var p models.Product
	err := r.Pool.QueryRow(ctx, productQuery, productID).Scan(
		&p.ProductID, &p.Name, &p.Price, &p.ComparePrice,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("product " + productID + " not found")
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	prices, err := r.queryCurrencyPrices(ctx, `SELECT `+currencyPriceColumns+`
		FROM product_currency_prices
		WHERE product_id = $1 AND is_active
		ORDER BY last_updated_at DESC;`, productID)
	if err != nil {
		return nil, err
	}

	product := mapping.ToDomainProduct(p, prices)
	return &product, nil
}

// ListProductCurrencyPrices retrieves every override of a product, active first.
func (r *PgxProductPriceRepository) ListProductCurrencyPrices(ctx context.Context, productID string) ([]domain.ProductCurrencyPrice, error) {
	prices, err := r.queryCurrencyPrices(ctx, `SELECT `+currencyPriceColumns+`
		FROM product_currency_prices
		WHERE product_id = $1
		ORDER BY is_active DESC, country, last_updated_at DESC;`, productID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainProductCurrencyPriceSlice(prices), nil
}

// SaveProductCurrencyPrice replaces the active override for (ProductID, Country),
// or inserts one when none exists. The product row is key-share locked first,
// then the upsert is arbitrated by the partial unique index on active overrides,
// so concurrent saves for the same country serialize on that index.
func (r *PgxProductPriceRepository) SaveProductCurrencyPrice(ctx context.Context, price domain.ProductCurrencyPrice) (*domain.ProductCurrencyPrice, error) {
	m := mapping.ToModelProductCurrencyPrice(price)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var one int
	err = tx.QueryRow(ctx, `SELECT 1 FROM products WHERE product_id = $1 FOR KEY SHARE`, m.ProductID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("product " + m.ProductID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to lock product", err)
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO product_currency_prices (`+currencyPriceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (product_id, country) WHERE is_active
		DO UPDATE SET currency = EXCLUDED.currency, symbol = EXCLUDED.symbol,
			price = EXCLUDED.price, compare_price = EXCLUDED.compare_price,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by
		RETURNING `+currencyPriceColumns,
		m.CurrencyPriceID, m.ProductID, m.Country, m.Currency, m.Symbol,
		m.Price, m.ComparePrice, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)

	saved, err := scanCurrencyPrice(row)
	if err != nil {
		return nil, mapSaveError(err, m.Country)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainPrice := mapping.ToDomainProductCurrencyPrice(saved)
	return &domainPrice, nil
}

// mapSaveError turns constraint violations from an override write into
// domain errors; anything else is an internal failure.
func mapSaveError(err error, country string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateUniqueViolation:
			return apperrors.NewDuplicateError("an active currency price for " + country + " already exists")
		case sqlStateForeignKeyViolation:
			return apperrors.NewNotFoundError("product not found")
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to save currency price", err)
}

// DeactivateProductCurrencyPrice marks the active override for a country inactive.
func (r *PgxProductPriceRepository) DeactivateProductCurrencyPrice(ctx context.Context, productID, country, userID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE product_currency_prices
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE product_id = $3 AND country = $4 AND is_active;`,
		time.Now(), userID, productID, country,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate currency price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("no active currency price for " + country)
	}
	return nil
}
