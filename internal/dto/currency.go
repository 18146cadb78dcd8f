package dto

import (
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
}

// ToListCurrencyResponse converts supported currencies to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = CurrencyResponse{CurrencyCode: curr.String()}
	}
	return res
}
