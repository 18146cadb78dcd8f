package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chiplogistics/pricing_backend/internal/apperrors"
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	portsrepo "github.com/chiplogistics/pricing_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxArticleRepository persists saved article templates in PostgreSQL.
type PgxArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPgxArticleRepository creates a new repository for article data.
func NewPgxArticleRepository(pool *pgxpool.Pool) portsrepo.ArticleRepositoryFacade {
	return &PgxArticleRepository{pool: pool}
}

// SaveArticle inserts or updates an article template.
func (r *PgxArticleRepository) SaveArticle(ctx context.Context, article domain.ArticleInfo) error {
	query := `
		INSERT INTO articles (article_id, name, duty_fee_ratio, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (article_id) DO UPDATE SET
			name = EXCLUDED.name,
			duty_fee_ratio = EXCLUDED.duty_fee_ratio,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.pool.Exec(ctx, query,
		article.ArticleID,
		article.Name,
		article.DutyFeeRatio,
		article.CreatedAt,
		article.CreatedBy,
		article.LastUpdatedAt,
		article.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save article %s: %w", article.ArticleID, err)
	}
	return nil
}

// FindArticleByID retrieves an article by its ID.
func (r *PgxArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.ArticleInfo, error) {
	query := `
		SELECT article_id, name, duty_fee_ratio, created_at, created_by, last_updated_at, last_updated_by
		FROM articles
		WHERE article_id = $1;
	`
	var article domain.ArticleInfo
	err := r.pool.QueryRow(ctx, query, articleID).Scan(
		&article.ArticleID,
		&article.Name,
		&article.DutyFeeRatio,
		&article.CreatedAt,
		&article.CreatedBy,
		&article.LastUpdatedAt,
		&article.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article by id %s: %w", articleID, err)
	}
	return &article, nil
}

// FindArticles retrieves articles whose name contains the query,
// case-insensitively. An empty query returns all articles, ordered by name.
func (r *PgxArticleRepository) FindArticles(ctx context.Context, query string) ([]domain.ArticleInfo, error) {
	sqlQuery := `
		SELECT article_id, name, duty_fee_ratio, created_at, created_by, last_updated_at, last_updated_by
		FROM articles
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ArticleInfo, error) {
		var article domain.ArticleInfo
		err := row.Scan(
			&article.ArticleID,
			&article.Name,
			&article.DutyFeeRatio,
			&article.CreatedAt,
			&article.CreatedBy,
			&article.LastUpdatedAt,
			&article.LastUpdatedBy,
		)
		return article, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan articles: %w", err)
	}
	return articles, nil
}

// DeleteArticle removes an article by its ID.
func (r *PgxArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	query := `DELETE FROM articles WHERE article_id = $1;`

	tag, err := r.pool.Exec(ctx, query, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article %s: %w", articleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
