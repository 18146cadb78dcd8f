package dto

import (
	"time"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateArticleRequest defines the data needed to save an article template.
type CreateArticleRequest struct {
	Name         string          `json:"name" binding:"required"`
	DutyFeeRatio decimal.Decimal `json:"dutyFeeRatio" binding:"required"`
}

// ArticleResponse defines the data returned for a saved article.
type ArticleResponse struct {
	ArticleID     string          `json:"articleID"`
	Name          string          `json:"name"`
	DutyFeeRatio  decimal.Decimal `json:"dutyFeeRatio"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToArticleResponse converts a domain.ArticleInfo to an ArticleResponse DTO.
func ToArticleResponse(article *domain.ArticleInfo) ArticleResponse {
	return ArticleResponse{
		ArticleID:     article.ArticleID,
		Name:          article.Name,
		DutyFeeRatio:  article.DutyFeeRatio,
		CreatedAt:     article.CreatedAt,
		CreatedBy:     article.CreatedBy,
		LastUpdatedAt: article.LastUpdatedAt,
		LastUpdatedBy: article.LastUpdatedBy,
	}
}

// ToListArticleResponse converts a slice of domain.ArticleInfo to DTOs.
func ToListArticleResponse(articles []domain.ArticleInfo) []ArticleResponse {
	res := make([]ArticleResponse, len(articles))
	for i := range articles {
		res[i] = ToArticleResponse(&articles[i])
	}
	return res
}
