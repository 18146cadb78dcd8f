package services

import (
	"sync"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type currencyPair struct {
	from domain.Currency
	to   domain.Currency
}

// RateCache stores exchange rates per currency pair for reuse within one
// pricing session. Entries never expire; callers needing freshness bypass the
// cache. The cache is owned by whoever constructs it and injected where
// needed, never shared through package state. Safe for concurrent use, the
// batch calculation writes to it from several goroutines.
type RateCache struct {
	mu    sync.RWMutex
	rates map[currencyPair]decimal.Decimal
}

// NewRateCache creates an empty rate cache.
func NewRateCache() *RateCache {
	return &RateCache{
		rates: make(map[currencyPair]decimal.Decimal),
	}
}

// Get returns the cached rate for the pair, if any.
func (c *RateCache) Get(from, to domain.Currency) (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rate, ok := c.rates[currencyPair{from: from, to: to}]
	return rate, ok
}

// Put records the rate for the pair, replacing any previous value.
func (c *RateCache) Put(from, to domain.Currency, rate decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates[currencyPair{from: from, to: to}] = rate
}

// Len returns the number of cached pairs.
func (c *RateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rates)
}
