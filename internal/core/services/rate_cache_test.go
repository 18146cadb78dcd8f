package services_test

import (
	"sync"
	"testing"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/chiplogistics/pricing_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCache_PutAndGet(t *testing.T) {
	cache := services.NewRateCache()
	rate := decimal.NewFromFloat(0.14)

	_, ok := cache.Get(domain.CurrencyCNY, domain.CurrencyUSD)
	assert.False(t, ok)

	cache.Put(domain.CurrencyCNY, domain.CurrencyUSD, rate)

	got, ok := cache.Get(domain.CurrencyCNY, domain.CurrencyUSD)
	require.True(t, ok)
	assert.True(t, rate.Equal(got))
	assert.Equal(t, 1, cache.Len())
}

func TestRateCache_PairsAreDirectional(t *testing.T) {
	cache := services.NewRateCache()
	cache.Put(domain.CurrencyCNY, domain.CurrencyUSD, decimal.NewFromFloat(0.14))

	// The inverse pair is a distinct entry.
	_, ok := cache.Get(domain.CurrencyUSD, domain.CurrencyCNY)
	assert.False(t, ok)
}

func TestRateCache_PutOverwrites(t *testing.T) {
	cache := services.NewRateCache()
	cache.Put(domain.CurrencyCNY, domain.CurrencyUSD, decimal.NewFromFloat(0.14))
	cache.Put(domain.CurrencyCNY, domain.CurrencyUSD, decimal.NewFromFloat(0.15))

	got, ok := cache.Get(domain.CurrencyCNY, domain.CurrencyUSD)
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(0.15).Equal(got))
	assert.Equal(t, 1, cache.Len())
}

func TestRateCache_ConcurrentAccess(t *testing.T) {
	cache := services.NewRateCache()
	rate := decimal.NewFromFloat(0.14)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Put(domain.CurrencyCNY, domain.CurrencyUSD, rate)
		}()
		go func() {
			defer wg.Done()
			cache.Get(domain.CurrencyCNY, domain.CurrencyUSD)
		}()
	}
	wg.Wait()

	got, ok := cache.Get(domain.CurrencyCNY, domain.CurrencyUSD)
	require.True(t, ok)
	assert.True(t, rate.Equal(got))
}
