package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	portsrepo "github.com/nepalicrafts/storefront_api/internal/core/ports/repositories"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/utils/currency"
)

type rateSnapshot struct {
	table   *currency.RateTable
	builtAt time.Time
}

// RateProvider serves the static rate table overlaid with the persisted rates.
// The table is swapped atomically; readers never block.
type RateProvider struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
	static   *currency.RateTable
	current  atomic.Pointer[rateSnapshot]
	now      func() time.Time
}

// NewRateProvider creates a RateProvider serving static until the first Refresh.
// rateRepo may be nil, in which case the static table is served forever.
func NewRateProvider(rateRepo portsrepo.ExchangeRateReader, static *currency.RateTable) *RateProvider {
	p := &RateProvider{
		rateRepo: rateRepo,
		static:   static,
		now:      time.Now,
	}
	p.current.Store(&rateSnapshot{table: static, builtAt: p.now()})
	return p
}

var _ portssvc.RateSource = (*RateProvider)(nil)

// Current returns the active table.
func (p *RateProvider) Current() *currency.RateTable {
	return p.current.Load().table
}

// LastUpdated returns when the active table was built.
func (p *RateProvider) LastUpdated() time.Time {
	return p.current.Load().builtAt
}

// Refresh reloads every persisted rate; inactive rows disable their currency.
// On failure the current table stays in force.
func (p *RateProvider) Refresh(ctx context.Context) error {
	if p.rateRepo == nil {
		return nil
	}
	rates, err := p.rateRepo.ListExchangeRates(ctx, false)
	if err != nil {
		p.LogWarn(ctx, "Failed to load persisted exchange rates, keeping current table", slog.String("error", err.Error()))
		return fmt.Errorf("failed to refresh exchange rates: %w", err)
	}
	p.current.Store(&rateSnapshot{table: p.static.Overlay(rates), builtAt: p.now()})
	p.LogInfo(ctx, "Exchange rates refreshed", slog.Int("persisted_rates", len(rates)))
	return nil
}

// Run refreshes every interval until ctx is cancelled. A non-positive interval returns immediately.
func (p *RateProvider) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = p.Refresh(ctx) // failure already logged; keep serving the previous table
		}
	}
}
