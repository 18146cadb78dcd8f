package dto

import (
	"fmt"

	"github.com/chiplogistics/pricing_backend/internal/apperrors"
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculationItemRequest is one shipment line in a calculation request.
// Decimal positivity is checked in the service layer since validator tags
// cannot inspect decimal.Decimal values.
type CalculationItemRequest struct {
	Name          string          `json:"name" binding:"required"`
	Count         int64           `json:"count" binding:"required,gt=0"`
	UnitWeight    decimal.Decimal `json:"unitWeight" binding:"required"`
	UnitPrice     decimal.Decimal `json:"unitPrice" binding:"required"`
	PriceCurrency string          `json:"priceCurrency" binding:"required,len=3,uppercase"`
	DutyFeeRatio  decimal.Decimal `json:"dutyFeeRatio"`
}

// CalculationRequest defines a batch of items to price for one customer.
type CalculationRequest struct {
	CustomerName string                   `json:"customerName" binding:"required"`
	Items        []CalculationItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToArticleItem validates the request line and converts it into a domain
// item. A zero duty fee ratio means "no duty" and defaults to 1.
func (r CalculationItemRequest) ToArticleItem() (*domain.ArticleItem, error) {
	currency, err := domain.ParseCurrency(r.PriceCurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if r.UnitWeight.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: unit weight must be positive for item %q", apperrors.ErrValidation, r.Name)
	}
	if r.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: unit price must be positive for item %q", apperrors.ErrValidation, r.Name)
	}
	dutyFeeRatio := r.DutyFeeRatio
	if dutyFeeRatio.IsZero() {
		dutyFeeRatio = decimal.NewFromInt(1)
	}
	if dutyFeeRatio.LessThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: duty fee ratio must be >= 1 for item %q", apperrors.ErrValidation, r.Name)
	}
	return &domain.ArticleItem{
		Name:          r.Name,
		Count:         r.Count,
		UnitWeight:    r.UnitWeight,
		UnitPrice:     r.UnitPrice,
		PriceCurrency: currency,
		DutyFeeRatio:  dutyFeeRatio,
	}, nil
}

// ToArticleItems converts and validates every line of the request.
func (r CalculationRequest) ToArticleItems() ([]domain.ArticleItem, error) {
	items := make([]domain.ArticleItem, 0, len(r.Items))
	for _, itemReq := range r.Items {
		item, err := itemReq.ToArticleItem()
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// CalculationItemResponse is one priced line in a calculation response.
type CalculationItemResponse struct {
	Name        string          `json:"name"`
	Count       int64           `json:"count"`
	TotalWeight decimal.Decimal `json:"totalWeight"`
	Price       decimal.Decimal `json:"price"`
}

// CalculationResponse is the outcome of pricing a batch of items.
type CalculationResponse struct {
	CustomerName string                    `json:"customerName"`
	Currency     string                    `json:"currency"`
	Results      []CalculationItemResponse `json:"results"`
	TotalPrice   decimal.Decimal           `json:"totalPrice"`
	SkippedItems []string                  `json:"skippedItems,omitempty"`
}

// ToCalculationResponse converts a batch outcome into the response DTO.
func ToCalculationResponse(batch *domain.BatchCalculation, customerName string, currency domain.Currency) CalculationResponse {
	results := make([]CalculationItemResponse, len(batch.Results))
	for i, result := range batch.Results {
		results[i] = CalculationItemResponse{
			Name:        result.Item.Name,
			Count:       result.Item.Count,
			TotalWeight: result.Item.TotalWeight(),
			Price:       result.Price,
		}
	}
	return CalculationResponse{
		CustomerName: customerName,
		Currency:     currency.String(),
		Results:      results,
		TotalPrice:   batch.TotalPrice,
		SkippedItems: batch.SkippedItems,
	}
}
