package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/article/domain/entity"
	"blog_backend/internal/feature/article/transport/http/dto"
)

// Favorite は POST /api/articles/:slug/favorite を処理します。
func (h *ArticleHandler) Favorite(c *gin.Context) {
	h.toggleFavorite(c, "favorite", h.articles.Favorite)
}

// Unfavorite は DELETE /api/articles/:slug/favorite を処理します。
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	h.toggleFavorite(c, "unfavorite", h.articles.Unfavorite)
}

func (h *ArticleHandler) toggleFavorite(c *gin.Context, op string, fn func(context.Context, uint, string) (*entity.Article, error)) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	a, err := fn(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		api.AbortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, api.ArticleEnvelope{Article: dto.ToArticleResponse(a)})
}
