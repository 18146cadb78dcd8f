package services

import (
	"context"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/chiplogistics/pricing_backend/internal/dto"
)

// ArticleReaderSvc defines read operations for saved articles.
type ArticleReaderSvc interface {
	// GetArticleByID retrieves a specific article by its ID.
	GetArticleByID(ctx context.Context, articleID string) (*domain.ArticleInfo, error)

	// FindArticles retrieves articles whose name contains the query,
	// case-insensitively. An empty query lists everything.
	FindArticles(ctx context.Context, query string) ([]domain.ArticleInfo, error)
}

// ArticleWriterSvc defines write operations for saved articles.
type ArticleWriterSvc interface {
	// CreateArticle persists a new article template.
	CreateArticle(ctx context.Context, req dto.CreateArticleRequest, creatorUserID string) (*domain.ArticleInfo, error)

	// DeleteArticle removes an article by ID.
	DeleteArticle(ctx context.Context, articleID string) error
}

// ArticleSvcFacade combines all article-related service interfaces.
type ArticleSvcFacade interface {
	ArticleReaderSvc
	ArticleWriterSvc
}
