package repositories

import (
	"context"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
)

// ArticleReader defines read operations for saved articles.
type ArticleReader interface {
	// FindArticleByID retrieves a specific article by its ID.
	FindArticleByID(ctx context.Context, articleID string) (*domain.ArticleInfo, error)

	// FindArticles retrieves articles whose name contains the query,
	// case-insensitively. An empty query returns all articles.
	FindArticles(ctx context.Context, query string) ([]domain.ArticleInfo, error)
}

// ArticleWriter defines write operations for saved articles.
type ArticleWriter interface {
	// SaveArticle persists a new or updated article.
	SaveArticle(ctx context.Context, article domain.ArticleInfo) error

	// DeleteArticle removes an article. Returns apperrors.ErrNotFound if no
	// article has the given ID.
	DeleteArticle(ctx context.Context, articleID string) error
}

// ArticleRepositoryFacade combines all article repository interfaces.
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
}
