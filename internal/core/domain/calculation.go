package domain

import (
	"github.com/shopspring/decimal"
)

// CalculationResult pairs an item (already normalized to the reference
// currency) with its computed landed cost. Result lists keep input order,
// which matters for report rows but not for the total.
type CalculationResult struct {
	Item  ArticleItem     `json:"item"`
	Price decimal.Decimal `json:"price"`
}

// BatchCalculation is the outcome of pricing a list of items: the priced
// results in input order, their sum, and the names of items that were skipped
// because their currency could not be converted to the reference currency.
type BatchCalculation struct {
	Results      []CalculationResult `json:"results"`
	TotalPrice   decimal.Decimal     `json:"totalPrice"`
	SkippedItems []string            `json:"skippedItems,omitempty"`
}
