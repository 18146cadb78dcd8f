package dto_test

import (
	"testing"

	"github.com/chiplogistics/pricing_backend/internal/apperrors"
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/chiplogistics/pricing_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemRequest() dto.CalculationItemRequest {
	return dto.CalculationItemRequest{
		Name:          "ESP32 devboard",
		Count:         10,
		UnitWeight:    decimal.NewFromFloat(2.1),
		UnitPrice:     decimal.NewFromFloat(125.874),
		PriceCurrency: "USD",
		DutyFeeRatio:  decimal.NewFromFloat(1.095),
	}
}

func TestToArticleItem_Success(t *testing.T) {
	req := validItemRequest()

	item, err := req.ToArticleItem()

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, req.Name, item.Name)
	assert.Equal(t, req.Count, item.Count)
	assert.True(t, req.UnitWeight.Equal(item.UnitWeight))
	assert.True(t, req.UnitPrice.Equal(item.UnitPrice))
	assert.Equal(t, domain.CurrencyUSD, item.PriceCurrency)
	assert.True(t, req.DutyFeeRatio.Equal(item.DutyFeeRatio))
}

func TestToArticleItem_ZeroDutyFeeRatioDefaultsToOne(t *testing.T) {
	req := validItemRequest()
	req.DutyFeeRatio = decimal.Decimal{}

	item, err := req.ToArticleItem()

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(item.DutyFeeRatio))
}

func TestToArticleItem_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*dto.CalculationItemRequest)
	}{
		{
			name:   "unsupported currency",
			mutate: func(r *dto.CalculationItemRequest) { r.PriceCurrency = "EUR" },
		},
		{
			name:   "lowercase currency",
			mutate: func(r *dto.CalculationItemRequest) { r.PriceCurrency = "usd" },
		},
		{
			name:   "zero unit weight",
			mutate: func(r *dto.CalculationItemRequest) { r.UnitWeight = decimal.Zero },
		},
		{
			name:   "negative unit weight",
			mutate: func(r *dto.CalculationItemRequest) { r.UnitWeight = decimal.NewFromInt(-1) },
		},
		{
			name:   "zero unit price",
			mutate: func(r *dto.CalculationItemRequest) { r.UnitPrice = decimal.Zero },
		},
		{
			name:   "duty fee ratio below one",
			mutate: func(r *dto.CalculationItemRequest) { r.DutyFeeRatio = decimal.NewFromFloat(0.9) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validItemRequest()
			tc.mutate(&req)

			item, err := req.ToArticleItem()

			require.Error(t, err)
			assert.Nil(t, item)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestToArticleItems_FailsOnFirstInvalidLine(t *testing.T) {
	bad := validItemRequest()
	bad.UnitPrice = decimal.Zero

	req := dto.CalculationRequest{
		CustomerName: "ACME Corp",
		Items:        []dto.CalculationItemRequest{validItemRequest(), bad},
	}

	items, err := req.ToArticleItems()

	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToCalculationResponse(t *testing.T) {
	item := domain.ArticleItem{
		Name:          "ESP32 devboard",
		Count:         10,
		UnitWeight:    decimal.NewFromFloat(2.1),
		UnitPrice:     decimal.NewFromFloat(125.874),
		PriceCurrency: domain.CurrencyUSD,
		DutyFeeRatio:  decimal.NewFromInt(1),
	}
	batch := &domain.BatchCalculation{
		Results: []domain.CalculationResult{
			{Item: item, Price: decimal.NewFromFloat(2303.5)},
		},
		TotalPrice:   decimal.NewFromFloat(2303.5),
		SkippedItems: []string{"Mystery part"},
	}

	resp := dto.ToCalculationResponse(batch, "ACME Corp", domain.CurrencyUSD)

	assert.Equal(t, "ACME Corp", resp.CustomerName)
	assert.Equal(t, "USD", resp.Currency)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "ESP32 devboard", resp.Results[0].Name)
	assert.Equal(t, int64(10), resp.Results[0].Count)
	assert.True(t, decimal.NewFromInt(21).Equal(resp.Results[0].TotalWeight))
	assert.True(t, decimal.NewFromFloat(2303.5).Equal(resp.Results[0].Price))
	assert.True(t, decimal.NewFromFloat(2303.5).Equal(resp.TotalPrice))
	assert.Equal(t, []string{"Mystery part"}, resp.SkippedItems)
}
