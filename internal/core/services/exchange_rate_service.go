package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	portsrepo "github.com/nepalicrafts/storefront_api/internal/core/ports/repositories"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/dto"
	"github.com/nepalicrafts/storefront_api/internal/utils/currency"
)

// ExchangeRateService provides business logic for persisted exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	rates    portssvc.RateSource
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, rates portssvc.RateSource) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo: rateRepo,
		rates:    rates,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// ListExchangeRates retrieves all persisted rates.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// UpsertExchangeRate validates and stores a rate, then reloads the active table.
func (s *ExchangeRateService) UpsertExchangeRate(ctx context.Context, currencyCode string, req dto.UpsertExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	code := currency.NormalizeCode(currencyCode)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	if code == domain.BaseCurrency {
		return nil, fmt.Errorf("%w: the %s rate is fixed at 1", apperrors.ErrValidation, domain.BaseCurrency)
	}
	if req.RateToNPR == nil || !req.RateToNPR.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		CurrencyCode: code,
		Country:      req.Country,
		Symbol:       req.Symbol,
		RateToNPR:    *req.RateToNPR,
		IsActive:     req.IsActive == nil || *req.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	existing, err := s.rateRepo.FindExchangeRateByCode(ctx, code)
	switch {
	case err == nil:
		rate.CreatedAt = existing.CreatedAt
		rate.CreatedBy = existing.CreatedBy
	case errors.Is(err, apperrors.ErrNotFound):
		// new currency
	default:
		return nil, fmt.Errorf("failed to look up exchange rate %s: %w", code, err)
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save exchange rate in service: %w", err)
	}

	if err := s.rates.Refresh(ctx); err != nil {
		s.LogWarn(ctx, "Exchange rate saved but active table not reloaded", slog.String("currency_code", code))
	}
	return &rate, nil
}
