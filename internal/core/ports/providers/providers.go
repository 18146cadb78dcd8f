// Package providers declares ports for the external collaborators of the
// pricing core: the exchange rate source and the document renderer.
package providers

import (
	"context"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateProvider supplies exchange rates between two currencies.
type RateProvider interface {
	// GetRate returns the rate converting one unit of from into to.
	// It returns apperrors.ErrUnconvertible when the provider has no rate
	// for the pair, and a *apperrors.RateLookupError on transport or
	// provider-reported failure. Same-currency requests return 1 without
	// any external call.
	GetRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error)
}

// DocumentRenderer turns report table data into file bytes.
type DocumentRenderer interface {
	RenderTable(table domain.TableData) ([]byte, error)

	// FileExtension returns the extension of rendered files, without the dot.
	FileExtension() string
}
