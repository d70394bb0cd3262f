package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	portsrepo "github.com/nepalicrafts/storefront_api/internal/core/ports/repositories"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/dto"
	"github.com/nepalicrafts/storefront_api/internal/utils/currency"
	"github.com/shopspring/decimal"
)

// PricingService resolves product prices per country and currency and manages overrides.
type PricingService struct {
	BaseService
	priceRepo portsrepo.ProductPriceRepositoryFacade
	rates     portssvc.RateSource
}

// NewPricingService creates a new PricingService.
func NewPricingService(priceRepo portsrepo.ProductPriceRepositoryFacade, rates portssvc.RateSource) *PricingService {
	return &PricingService{
		priceRepo: priceRepo,
		rates:     rates,
	}
}

var _ portssvc.PricingSvcFacade = (*PricingService)(nil)

// GetProductPrice resolves what a customer in country pays in currencyCode.
//
// An active override for the exact country string wins; its amount is converted
// through NPR when it is stored in a different currency. Otherwise the product's
// NPR price is converted. The NPR price is the Nepal-labelled override when one
// exists, else the deprecated base price; an NPR price of zero means the product
// has no usable price and resolves to not found.
func (s *PricingService) GetProductPrice(ctx context.Context, productID, country, currencyCode string) (*domain.ProductPrice, error) {
	table := s.rates.Current()
	code := currency.NormalizeCode(currencyCode)
	if strings.TrimSpace(productID) == "" || strings.TrimSpace(country) == "" {
		return nil, fmt.Errorf("%w: product id and country are required", apperrors.ErrValidation)
	}
	if !table.Supports(code) {
		return nil, apperrors.NewUnsupportedCurrencyError(code)
	}

	product, err := s.priceRepo.FindProductWithActivePrices(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s for pricing: %w", productID, err)
	}

	nprPrice, nprCompare, nprSource := resolveNPRPrice(product)

	result := &domain.ProductPrice{
		ProductID:      product.ProductID,
		Country:        country,
		Currency:       code,
		NPRPrice:       nprPrice,
		NPRPriceSource: nprSource,
		ExchangeRate:   table.GetExchangeRate(ctx, domain.BaseCurrency, code),
	}

	if override := findCountryOverride(product.CurrencyPrices, country); override != nil {
		price, compare, err := overrideInCurrency(table, *override, code)
		if err == nil {
			result.Price = price
			result.ComparePrice = compare
			result.Symbol = overrideSymbol(table, *override, code)
			result.PriceSource = domain.PriceSourceOverride
			return result, nil
		}
		s.LogWarn(ctx, "Ignoring override stored in an unsupported currency",
			slog.String("product_id", product.ProductID),
			slog.String("country", country),
			slog.String("override_currency", override.Currency),
		)
	}

	if nprPrice.IsZero() {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no price available for product %s", product.ProductID))
	}

	result.Price = table.ConvertFromNPR(ctx, nprPrice, code)
	if nprCompare != nil {
		compare := table.ConvertFromNPR(ctx, *nprCompare, code)
		result.ComparePrice = &compare
	}
	result.Symbol, _ = table.Symbol(code)
	result.PriceSource = nprSource
	return result, nil
}

// ListProductCurrencyPrices retrieves every override of a product.
func (s *PricingService) ListProductCurrencyPrices(ctx context.Context, productID string) ([]domain.ProductCurrencyPrice, error) {
	prices, err := s.priceRepo.ListProductCurrencyPrices(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency prices in service: %w", err)
	}
	if prices == nil {
		return []domain.ProductCurrencyPrice{}, nil
	}
	return prices, nil
}

// UpsertProductCurrencyPrice creates or replaces the override of a product for one country.
func (s *PricingService) UpsertProductCurrencyPrice(ctx context.Context, productID string, req dto.UpsertProductCurrencyPriceRequest, userID string) (*domain.ProductCurrencyPrice, error) {
	table := s.rates.Current()
	code := currency.NormalizeCode(req.Currency)
	country := strings.TrimSpace(req.Country)

	if country == "" {
		return nil, fmt.Errorf("%w: country is required", apperrors.ErrValidation)
	}
	if !table.Supports(code) {
		return nil, apperrors.NewUnsupportedCurrencyError(code)
	}
	if req.Price == nil || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be zero or positive", apperrors.ErrValidation)
	}
	if req.ComparePrice != nil && req.ComparePrice.IsNegative() {
		return nil, fmt.Errorf("%w: compare price must be zero or positive", apperrors.ErrValidation)
	}

	if _, err := s.priceRepo.FindProductWithActivePrices(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	symbol := req.Symbol
	if symbol == "" {
		symbol, _ = table.Symbol(code)
	}

	now := time.Now()
	price := domain.ProductCurrencyPrice{
		CurrencyPriceID: uuid.NewString(),
		ProductID:       productID,
		Country:         country,
		Currency:        code,
		Symbol:          symbol,
		Price:           *req.Price,
		ComparePrice:    req.ComparePrice,
		IsActive:        req.IsActive == nil || *req.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.priceRepo.SaveProductCurrencyPrice(ctx, price)
	if err != nil {
		return nil, fmt.Errorf("failed to save currency price in service: %w", err)
	}
	s.LogInfo(ctx, "Currency price saved",
		slog.String("product_id", productID),
		slog.String("country", country),
		slog.String("currency", code),
	)
	return saved, nil
}

// DeactivateProductCurrencyPrice turns off the active override of a product for one country.
func (s *PricingService) DeactivateProductCurrencyPrice(ctx context.Context, productID, country, userID string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return fmt.Errorf("%w: country is required", apperrors.ErrValidation)
	}
	if err := s.priceRepo.DeactivateProductCurrencyPrice(ctx, productID, country, userID); err != nil {
		return fmt.Errorf("failed to deactivate currency price in service: %w", err)
	}
	return nil
}

// resolveNPRPrice picks the product's NPR price: a Nepal-labelled override first,
// then the deprecated base price.
func resolveNPRPrice(product *domain.Product) (decimal.Decimal, *decimal.Decimal, domain.PriceSource) {
	for i := range product.CurrencyPrices {
		p := product.CurrencyPrices[i]
		if p.IsActive && p.IsNepalLabeled() {
			return p.Price, p.ComparePrice, domain.PriceSourceOverride
		}
	}
	return product.Price, product.ComparePrice, domain.PriceSourceLegacyBase
}

// findCountryOverride returns the first active override whose country matches exactly.
// Overrides arrive most recently updated first.
func findCountryOverride(prices []domain.ProductCurrencyPrice, country string) *domain.ProductCurrencyPrice {
	for i := range prices {
		if prices[i].IsActive && prices[i].Country == country {
			return &prices[i]
		}
	}
	return nil
}

func overrideInCurrency(table *currency.RateTable, override domain.ProductCurrencyPrice, code string) (decimal.Decimal, *decimal.Decimal, error) {
	if currency.NormalizeCode(override.Currency) == code {
		return override.Price, override.ComparePrice, nil
	}
	price, err := convertVia(table, override.Price, override.Currency, code)
	if err != nil {
		return decimal.Zero, nil, err
	}
	if override.ComparePrice == nil {
		return price, nil, nil
	}
	compare, err := convertVia(table, *override.ComparePrice, override.Currency, code)
	if err != nil {
		return decimal.Zero, nil, err
	}
	return price, &compare, nil
}

func convertVia(table *currency.RateTable, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	npr, err := table.ToNPR(amount, from)
	if err != nil {
		return decimal.Zero, err
	}
	return table.FromNPR(npr, to)
}

func overrideSymbol(table *currency.RateTable, override domain.ProductCurrencyPrice, code string) string {
	if override.Symbol != "" && currency.NormalizeCode(override.Currency) == code {
		return override.Symbol
	}
	symbol, _ := table.Symbol(code)
	return symbol
}
