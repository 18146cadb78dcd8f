package services

import (
	"context"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PricingSvcFacade exposes the landed-cost calculation engine.
type PricingSvcFacade interface {
	// CalculateItemPrice computes the landed cost of a single item whose
	// price is already in the reference currency. Pure and deterministic.
	CalculateItemPrice(item domain.ArticleItem) decimal.Decimal

	// NormalizeItem returns a copy of the item with its price converted to
	// the reference currency. It returns (nil, nil) when the provider has no
	// rate for the item's currency, and an error on lookup failure. When
	// useCached is true a previously fetched rate for the same pair may be
	// reused; a cache miss always falls through to a live call.
	NormalizeItem(ctx context.Context, item domain.ArticleItem, useCached bool) (*domain.ArticleItem, error)

	// CalculatePrices normalizes and prices every item, returning results in
	// input order together with the total. Items with unconvertible
	// currencies are skipped and reported by name; a hard rate lookup
	// failure aborts the whole batch.
	CalculatePrices(ctx context.Context, items []domain.ArticleItem) (*domain.BatchCalculation, error)

	// ReferenceCurrency is the currency all prices are normalized to.
	ReferenceCurrency() domain.Currency
}
