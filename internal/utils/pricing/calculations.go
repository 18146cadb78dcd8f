// Package pricing implements the landed-cost formula for article items.
// All arithmetic stays on decimal values until the single rounding step at
// the end; callers format for display separately.
package pricing

import (
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AirDeliveryPricePerKg is the air delivery cost of one kilogram, charged per
// started kilogram of total shipment weight.
const AirDeliveryPricePerKg = 12

var (
	// CustomsFeeRatio is the customs charge as a fraction of invoice plus
	// air delivery price.
	CustomsFeeRatio = decimal.New(215, -3) // 0.215

	// PriceMarginRatio is the margin applied on top of all fees.
	PriceMarginRatio = decimal.New(20, -2) // 0.20

	airDeliveryRate = decimal.NewFromInt(AirDeliveryPricePerKg)
	one             = decimal.NewFromInt(1)
)

// SecondaryDeliveryTier discounts the domestic delivery leg for heavier
// shipments: above Threshold kilograms the air delivery price is divided by
// Divisor.
type SecondaryDeliveryTier struct {
	Threshold decimal.Decimal
	Divisor   decimal.Decimal
}

// SecondaryDeliveryTiers is scanned top-down; the first tier whose threshold
// is exceeded wins. Shipments below every threshold pay the full air delivery
// price again for the domestic leg.
var SecondaryDeliveryTiers = []SecondaryDeliveryTier{
	{Threshold: decimal.NewFromInt(100), Divisor: decimal.NewFromInt(6)},
	{Threshold: decimal.NewFromInt(50), Divisor: decimal.NewFromInt(5)},
	{Threshold: decimal.NewFromInt(25), Divisor: decimal.NewFromInt(4)},
	{Threshold: decimal.NewFromInt(5), Divisor: decimal.NewFromInt(3)},
}

// AirDeliveryPrice returns the cost of flying totalWeight kilograms in.
// Partial kilograms are billed as a full kilogram.
func AirDeliveryPrice(totalWeight decimal.Decimal) decimal.Decimal {
	return totalWeight.Ceil().Mul(airDeliveryRate)
}

// CustomsBase is the value customs fees are computed against: invoice price
// plus air delivery.
func CustomsBase(totalPrice, airDeliveryPrice decimal.Decimal) decimal.Decimal {
	return totalPrice.Add(airDeliveryPrice)
}

// CustomsFee returns the customs charge for a given customs base.
func CustomsFee(customsBase decimal.Decimal) decimal.Decimal {
	return customsBase.Mul(CustomsFeeRatio)
}

// DutyFee returns the import duty on the invoice price. A ratio of exactly 1
// yields zero duty.
func DutyFee(totalPrice, dutyFeeRatio decimal.Decimal) decimal.Decimal {
	return totalPrice.Mul(dutyFeeRatio.Sub(one))
}

// SecondaryDeliveryPrice returns the domestic delivery leg cost, discounted
// by the first matching tier.
func SecondaryDeliveryPrice(airDeliveryPrice, totalWeight decimal.Decimal) decimal.Decimal {
	for _, tier := range SecondaryDeliveryTiers {
		if totalWeight.GreaterThan(tier.Threshold) {
			return airDeliveryPrice.Div(tier.Divisor)
		}
	}
	return airDeliveryPrice
}

// CalculateArticlePrice computes the landed cost of one article item: invoice
// price, both delivery legs, customs and duty fees, and margin, rounded to
// one decimal place. It is pure and assumes a pre-validated item (positive
// count, weight and price, duty fee ratio >= 1) whose price is already in the
// reference currency.
func CalculateArticlePrice(item domain.ArticleItem) decimal.Decimal {
	totalWeight := item.TotalWeight()
	totalPrice := item.TotalPrice()

	airDeliveryPrice := AirDeliveryPrice(totalWeight)
	customsBase := CustomsBase(totalPrice, airDeliveryPrice)
	customsFee := CustomsFee(customsBase)
	dutyFee := DutyFee(totalPrice, item.DutyFeeRatio)
	secondaryDeliveryPrice := SecondaryDeliveryPrice(airDeliveryPrice, totalWeight)

	priceWithFees := customsBase.Add(customsFee).Add(secondaryDeliveryPrice).Add(dutyFee)
	priceWithMargin := priceWithFees.Mul(one.Add(PriceMarginRatio))
	return priceWithMargin.Round(1)
}

// CalculateTotalPrice sums the computed prices of a result list. An empty
// list totals to zero. Summation is order-independent.
func CalculateTotalPrice(results []domain.CalculationResult) decimal.Decimal {
	total := decimal.Zero
	for _, result := range results {
		total = total.Add(result.Price)
	}
	return total
}
