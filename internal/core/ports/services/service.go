package services

// ServiceContainer holds instances of all the application services.
// It is the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Rates        RateSource
	Currency     CurrencySvc
	ExchangeRate ExchangeRateSvcFacade
	Pricing      PricingSvcFacade
}
