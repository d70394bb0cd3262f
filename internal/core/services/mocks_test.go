package services_test

import (
	"context"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	portsrepo "github.com/nepalicrafts/storefront_api/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRateByCode(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

// --- Mock ProductPriceRepository ---
type MockProductPriceRepository struct {
	mock.Mock
}

func (m *MockProductPriceRepository) FindProductWithActivePrices(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductPriceRepository) ListProductCurrencyPrices(ctx context.Context, productID string) ([]domain.ProductCurrencyPrice, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductCurrencyPrice), args.Error(1)
}

func (m *MockProductPriceRepository) SaveProductCurrencyPrice(ctx context.Context, price domain.ProductCurrencyPrice) (*domain.ProductCurrencyPrice, error) {
	args := m.Called(ctx, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductCurrencyPrice), args.Error(1)
}

func (m *MockProductPriceRepository) DeactivateProductCurrencyPrice(ctx context.Context, productID, country, userID string) error {
	args := m.Called(ctx, productID, country, userID)
	return args.Error(0)
}

var _ portsrepo.ProductPriceRepositoryFacade = (*MockProductPriceRepository)(nil)
