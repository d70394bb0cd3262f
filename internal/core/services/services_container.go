package services

import (
	portsrepo "github.com/nepalicrafts/storefront_api/internal/core/ports/repositories"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/utils/currency"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The returned RateProvider is also exposed so the caller can start its refresh loop.
func NewServiceContainer(repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, *RateProvider) {
	rateProvider := NewRateProvider(repos.ExchangeRateRepo, currency.DefaultRateTable())

	container := &portssvc.ServiceContainer{
		Rates:        rateProvider,
		Currency:     NewCurrencyService(rateProvider),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, rateProvider),
		Pricing:      NewPricingService(repos.ProductPriceRepo, rateProvider),
	}
	return container, rateProvider
}
