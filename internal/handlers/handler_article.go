package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chiplogistics/pricing_backend/internal/apperrors"
	portssvc "github.com/chiplogistics/pricing_backend/internal/core/ports/services"
	"github.com/chiplogistics/pricing_backend/internal/dto"
	"github.com/chiplogistics/pricing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// articleHandler handles HTTP requests related to saved articles.
type articleHandler struct {
	articleService portssvc.ArticleSvcFacade
}

// newArticleHandler creates a new articleHandler.
func newArticleHandler(as portssvc.ArticleSvcFacade) *articleHandler {
	return &articleHandler{
		articleService: as,
	}
}

// registerArticleRoutes registers routes related to saved articles.
func registerArticleRoutes(rg *gin.RouterGroup, articleService portssvc.ArticleSvcFacade) {
	h := newArticleHandler(articleService)

	articles := rg.Group("/articles")
	{
		articles.POST("", h.createArticle)
		articles.GET("", h.findArticles)
		articles.GET("/:articleID", h.getArticleByID)
		articles.DELETE("/:articleID", h.deleteArticle)
	}
}

// createArticle godoc
// @Summary Create a saved article
// @Description Saves an article template (name and duty fee ratio) for reuse in calculations
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create article"
// @Security BearerAuth
// @Router /articles [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateArticle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create article", slog.String("article_name", req.Name))

	createdArticle, err := h.articleService.CreateArticle(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating article", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create article in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		}
		return
	}

	logger.Info("Article created successfully", slog.String("article_id", createdArticle.ArticleID))
	c.JSON(http.StatusCreated, dto.ToArticleResponse(createdArticle))
}

// findArticles godoc
// @Summary Find saved articles
// @Description Lists saved articles, optionally filtered by a case-insensitive name substring
// @Tags articles
// @Produce json
// @Param query query string false "Name substring to search for"
// @Success 200 {array} dto.ArticleResponse
// @Failure 500 {object} map[string]string "Failed to list articles"
// @Security BearerAuth
// @Router /articles [get]
func (h *articleHandler) findArticles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("query")

	articles, err := h.articleService.FindArticles(c.Request.Context(), query)
	if err != nil {
		logger.Error("Failed to find articles in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}

	logger.Info("Articles listed successfully", slog.Int("count", len(articles)))
	c.JSON(http.StatusOK, dto.ToListArticleResponse(articles))
}

// getArticleByID godoc
// @Summary Get a saved article
// @Description Retrieves one saved article by its ID
// @Tags articles
// @Produce json
// @Param articleID path string true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} map[string]string "Article not found"
// @Failure 500 {object} map[string]string "Failed to retrieve article"
// @Security BearerAuth
// @Router /articles/{articleID} [get]
func (h *articleHandler) getArticleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("articleID")

	logger = logger.With(slog.String("article_id", articleID))

	article, err := h.articleService.GetArticleByID(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Article not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		} else {
			logger.Error("Failed to get article from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve article"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// deleteArticle godoc
// @Summary Delete a saved article
// @Description Removes a saved article by its ID
// @Tags articles
// @Produce json
// @Param articleID path string true "Article ID"
// @Success 204 "Article deleted"
// @Failure 404 {object} map[string]string "Article not found"
// @Failure 500 {object} map[string]string "Failed to delete article"
// @Security BearerAuth
// @Router /articles/{articleID} [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("articleID")

	logger = logger.With(slog.String("article_id", articleID))

	if err := h.articleService.DeleteArticle(c.Request.Context(), articleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Article not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		} else {
			logger.Error("Failed to delete article in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		}
		return
	}

	logger.Info("Article deleted successfully")
	c.Status(http.StatusNoContent)
}
