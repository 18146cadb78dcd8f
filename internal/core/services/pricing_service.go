package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chiplogistics/pricing_backend/internal/apperrors"
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/chiplogistics/pricing_backend/internal/core/ports/providers"
	portssvc "github.com/chiplogistics/pricing_backend/internal/core/ports/services"
	"github.com/chiplogistics/pricing_backend/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// PricingService normalizes item prices to the reference currency and runs
// the landed-cost calculation over them.
type PricingService struct {
	rateProvider      providers.RateProvider
	referenceCurrency domain.Currency
	rateCache         *RateCache
}

// PricingServiceOption is a functional option for configuring the pricing service.
type PricingServiceOption func(*PricingService)

// WithRateCache replaces the service's session rate cache, mainly for tests
// and for callers that share one cache across services.
func WithRateCache(cache *RateCache) PricingServiceOption {
	return func(s *PricingService) {
		s.rateCache = cache
	}
}

// NewPricingService creates a new PricingService.
func NewPricingService(rateProvider providers.RateProvider, referenceCurrency domain.Currency, options ...PricingServiceOption) *PricingService {
	svc := &PricingService{
		rateProvider:      rateProvider,
		referenceCurrency: referenceCurrency,
		rateCache:         NewRateCache(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure PricingService implements the facade interface.
var _ portssvc.PricingSvcFacade = (*PricingService)(nil)

// ReferenceCurrency returns the currency all prices are normalized to.
func (s *PricingService) ReferenceCurrency() domain.Currency {
	return s.referenceCurrency
}

// CalculateItemPrice computes the landed cost of one item whose price is
// already in the reference currency.
func (s *PricingService) CalculateItemPrice(item domain.ArticleItem) decimal.Decimal {
	return pricing.CalculateArticlePrice(item)
}

// NormalizeItem returns a copy of the item with its price converted to the
// reference currency. Items already in the reference currency are returned
// unchanged without touching the provider. A pair the provider has no rate
// for yields (nil, nil); lookup failures are returned as-is.
func (s *PricingService) NormalizeItem(ctx context.Context, item domain.ArticleItem, useCached bool) (*domain.ArticleItem, error) {
	if item.PriceCurrency == s.referenceCurrency {
		return &item, nil
	}

	rate, err := s.getRate(ctx, item.PriceCurrency, s.referenceCurrency, useCached)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnconvertible) {
			return nil, nil
		}
		return nil, err
	}

	converted := item.WithUnitPrice(item.UnitPrice.Mul(rate), s.referenceCurrency)
	return &converted, nil
}

// CalculatePrices normalizes and prices a batch of items. Rates for the
// distinct non-reference currency pairs are fetched concurrently, one flight
// per pair; items are then priced synchronously in input order. Items whose
// currency has no rate are reported in SkippedItems, a hard lookup failure
// aborts the batch.
func (s *PricingService) CalculatePrices(ctx context.Context, items []domain.ArticleItem) (*domain.BatchCalculation, error) {
	unconvertible, err := s.prefetchRates(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	batch := &domain.BatchCalculation{
		Results: make([]domain.CalculationResult, 0, len(items)),
	}
	for _, item := range items {
		if unconvertible[item.PriceCurrency] {
			batch.SkippedItems = append(batch.SkippedItems, item.Name)
			continue
		}
		normalized, err := s.NormalizeItem(ctx, item, true)
		if err != nil {
			return nil, err
		}
		if normalized == nil {
			batch.SkippedItems = append(batch.SkippedItems, item.Name)
			continue
		}
		batch.Results = append(batch.Results, domain.CalculationResult{
			Item:  *normalized,
			Price: pricing.CalculateArticlePrice(*normalized),
		})
	}

	batch.TotalPrice = pricing.CalculateTotalPrice(batch.Results)
	return batch, nil
}

// prefetchRates fetches the rate for every distinct non-reference currency in
// the batch concurrently and seeds the session cache. It returns the set of
// currencies the provider has no rate for.
func (s *PricingService) prefetchRates(ctx context.Context, items []domain.ArticleItem) (map[domain.Currency]bool, error) {
	distinct := make(map[domain.Currency]struct{})
	for _, item := range items {
		if item.PriceCurrency != s.referenceCurrency {
			distinct[item.PriceCurrency] = struct{}{}
		}
	}

	var mu sync.Mutex
	unconvertible := make(map[domain.Currency]bool)

	g, gctx := errgroup.WithContext(ctx)
	for currency := range distinct {
		currency := currency
		g.Go(func() error {
			if _, ok := s.rateCache.Get(currency, s.referenceCurrency); ok {
				return nil
			}
			_, err := s.getRate(gctx, currency, s.referenceCurrency, false)
			if errors.Is(err, apperrors.ErrUnconvertible) {
				mu.Lock()
				unconvertible[currency] = true
				mu.Unlock()
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return unconvertible, nil
}

// getRate resolves a rate through the session cache. A cache hit is only used
// in cached mode; a miss always goes to the provider, and successful live
// lookups refresh the cache.
func (s *PricingService) getRate(ctx context.Context, from, to domain.Currency, useCached bool) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if useCached {
		if rate, ok := s.rateCache.Get(from, to); ok {
			return rate, nil
		}
	}

	rate, err := s.rateProvider.GetRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	s.rateCache.Put(from, to, rate)
	return rate, nil
}
