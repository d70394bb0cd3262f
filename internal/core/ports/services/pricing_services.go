package services

import (
	"context"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/nepalicrafts/storefront_api/internal/dto"
)

// ProductPriceResolverSvc resolves storefront prices
type ProductPriceResolverSvc interface {
	// GetProductPrice resolves the price of a product for a customer's country and currency.
	// Returns apperrors.ErrNotFound when the product is missing or has no usable price.
	GetProductPrice(ctx context.Context, productID, country, currencyCode string) (*domain.ProductPrice, error)
}

// ProductPriceAdminSvc manages per-country overrides
type ProductPriceAdminSvc interface {
	ListProductCurrencyPrices(ctx context.Context, productID string) ([]domain.ProductCurrencyPrice, error)
	UpsertProductCurrencyPrice(ctx context.Context, productID string, req dto.UpsertProductCurrencyPriceRequest, userID string) (*domain.ProductCurrencyPrice, error)
	DeactivateProductCurrencyPrice(ctx context.Context, productID, country, userID string) error
}

// PricingSvcFacade combines all product pricing service interfaces
type PricingSvcFacade interface {
	ProductPriceResolverSvc
	ProductPriceAdminSvc
}
