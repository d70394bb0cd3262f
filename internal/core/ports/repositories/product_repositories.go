package repositories

import (
	"context"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
)

// ProductPriceReader defines read operations used by price resolution
type ProductPriceReader interface {
	// FindProductWithActivePrices retrieves a product and all of its active
	// currency-price overrides, most recently updated first.
	// Returns apperrors.ErrNotFound when the product does not exist.
	FindProductWithActivePrices(ctx context.Context, productID string) (*domain.Product, error)

	// ListProductCurrencyPrices retrieves every override of a product, active or not.
	ListProductCurrencyPrices(ctx context.Context, productID string) ([]domain.ProductCurrencyPrice, error)
}

// ProductPriceWriter defines write operations on currency-price overrides
type ProductPriceWriter interface {
	// SaveProductCurrencyPrice upserts the override for (ProductID, Country) and
	// returns the stored row.
	SaveProductCurrencyPrice(ctx context.Context, price domain.ProductCurrencyPrice) (*domain.ProductCurrencyPrice, error)

	// DeactivateProductCurrencyPrice marks the active override for a country inactive.
	// Returns apperrors.ErrNotFound when there is none.
	DeactivateProductCurrencyPrice(ctx context.Context, productID, country, userID string) error
}

// ProductPriceRepositoryFacade combines all product price repository interfaces
type ProductPriceRepositoryFacade interface {
	ProductPriceReader
	ProductPriceWriter
}
