package services

import (
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	portssvc "github.com/chiplogistics/pricing_backend/internal/core/ports/services"
)

// CurrencyService exposes the closed set of supported currencies. Currencies
// are a compile-time enum, there is nothing to persist.
type CurrencyService struct{}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// ListCurrencies returns all currencies accepted for item prices.
func (s *CurrencyService) ListCurrencies() []domain.Currency {
	return domain.SupportedCurrencies()
}
