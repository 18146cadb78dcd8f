package domain

import (
	"github.com/shopspring/decimal"
)

// ArticleInfo is a saved article template: a name plus the duty fee ratio to
// prefill when the article is used in a calculation.
type ArticleInfo struct {
	ArticleID    string          `json:"articleID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	DutyFeeRatio decimal.Decimal `json:"dutyFeeRatio"` // >= 1; 1.095 means 9.5% duty
	AuditFields
}

// ArticleItem is one shipment line entering a price calculation. Values are
// set once at creation; currency conversion produces a new item via
// WithUnitPrice rather than mutating in place.
type ArticleItem struct {
	Name          string          `json:"name"`
	Count         int64           `json:"count"`      // > 0
	UnitWeight    decimal.Decimal `json:"unitWeight"` // kg per unit, > 0
	UnitPrice     decimal.Decimal `json:"unitPrice"`  // per unit in PriceCurrency, > 0
	PriceCurrency Currency        `json:"priceCurrency"`
	DutyFeeRatio  decimal.Decimal `json:"dutyFeeRatio"` // >= 1
}

// TotalWeight returns the shipment weight of the line in kilograms.
func (a ArticleItem) TotalWeight() decimal.Decimal {
	return a.UnitWeight.Mul(decimal.NewFromInt(a.Count))
}

// TotalPrice returns the undelivered invoice price of the line.
func (a ArticleItem) TotalPrice() decimal.Decimal {
	return a.UnitPrice.Mul(decimal.NewFromInt(a.Count))
}

// WithUnitPrice returns a copy of the item with its price replaced, used when
// normalizing the price to the reference currency.
func (a ArticleItem) WithUnitPrice(unitPrice decimal.Decimal, currency Currency) ArticleItem {
	converted := a
	converted.UnitPrice = unitPrice
	converted.PriceCurrency = currency
	return converted
}
