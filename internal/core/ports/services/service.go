package services

import "github.com/chiplogistics/pricing_backend/internal/core/domain"

// CurrencySvcFacade exposes the closed currency set.
type CurrencySvcFacade interface {
	// ListCurrencies returns all currencies accepted for item prices.
	ListCurrencies() []domain.Currency
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Article  ArticleSvcFacade
	Pricing  PricingSvcFacade
	Report   ReportSvcFacade
	Currency CurrencySvcFacade
}
