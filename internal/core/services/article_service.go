package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chiplogistics/pricing_backend/internal/apperrors"
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	portsrepo "github.com/chiplogistics/pricing_backend/internal/core/ports/repositories"
	portssvc "github.com/chiplogistics/pricing_backend/internal/core/ports/services"
	"github.com/chiplogistics/pricing_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArticleService provides CRUD over saved article templates.
type ArticleService struct {
	articleRepo portsrepo.ArticleRepositoryFacade
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo portsrepo.ArticleRepositoryFacade) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

var _ portssvc.ArticleSvcFacade = (*ArticleService)(nil)

// CreateArticle handles the creation of a new article template.
func (s *ArticleService) CreateArticle(ctx context.Context, req dto.CreateArticleRequest, creatorUserID string) (*domain.ArticleInfo, error) {
	// Shape validation is handled by DTO binding tags; decimal fields are
	// checked here since binding cannot inspect them.
	if req.DutyFeeRatio.LessThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: duty fee ratio must be >= 1", apperrors.ErrValidation)
	}

	now := time.Now()
	article := domain.ArticleInfo{
		ArticleID:    uuid.NewString(),
		Name:         req.Name,
		DutyFeeRatio: req.DutyFeeRatio,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.articleRepo.SaveArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article in service: %w", err)
	}
	return &article, nil
}

// GetArticleByID retrieves a saved article by its ID.
func (s *ArticleService) GetArticleByID(ctx context.Context, articleID string) (*domain.ArticleInfo, error) {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get article in service: %w", err)
	}
	return article, nil
}

// FindArticles retrieves articles whose name contains the query, ignoring
// case and word position. An empty query lists everything.
func (s *ArticleService) FindArticles(ctx context.Context, query string) ([]domain.ArticleInfo, error) {
	articles, err := s.articleRepo.FindArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find articles in service: %w", err)
	}
	if articles == nil {
		return []domain.ArticleInfo{}, nil
	}
	return articles, nil
}

// DeleteArticle removes a saved article by its ID.
func (s *ArticleService) DeleteArticle(ctx context.Context, articleID string) error {
	if err := s.articleRepo.DeleteArticle(ctx, articleID); err != nil {
		return fmt.Errorf("failed to delete article in service: %w", err)
	}
	return nil
}
