// Package handler はarticleフィーチャーのHTTPハンドラーを提供します。
// 記事・フィード・コメント・お気に入りのエンドポイントを1つのハンドラーで扱います。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/article/domain/entity"
	"blog_backend/internal/feature/article/transport/http/dto"
	jwtmw "blog_backend/internal/platform/jwt"
)

// ArticleUsecase は記事操作のユースケースを定義します。
type ArticleUsecase interface {
	ListArticles(ctx context.Context, f entity.Filter) (entity.Page, error)
	ListFeed(ctx context.Context, userID uint, p entity.Pagination) (entity.Page, error)
	GetArticle(ctx context.Context, slug string) (*entity.Article, error)
	CreateArticle(ctx context.Context, authorID uint, d entity.Draft) (*entity.Article, error)
	UpdateArticle(ctx context.Context, userID uint, slug string, patch entity.Patch) (*entity.Article, error)
	DeleteArticle(ctx context.Context, userID uint, slug string) error
	ListComments(ctx context.Context, slug string) ([]entity.Comment, error)
	AddComment(ctx context.Context, userID uint, slug, body string) (*entity.Article, error)
	DeleteComment(ctx context.Context, userID uint, slug string, commentID uint) (*entity.Article, error)
	Favorite(ctx context.Context, userID uint, slug string) (*entity.Article, error)
	Unfavorite(ctx context.Context, userID uint, slug string) (*entity.Article, error)
}

// ArticleHandler は /api/articles 配下のリクエストを処理します。
type ArticleHandler struct {
	articles ArticleUsecase
}

// NewArticleHandler はArticleHandlerを生成します。
func NewArticleHandler(articles ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// List は GET /api/articles を処理します。
// クエリパラメータ tag, author, favorited, limit, offset で絞り込みます。
func (h *ArticleHandler) List(c *gin.Context) {
	var (
		tag, author, favorited *string
		p                      entity.Pagination
	)
	q := c.Request.URL.Query()
	for name, dest := range map[string]**string{"tag": &tag, "author": &author, "favorited": &favorited} {
		if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
			api.AbortInvalidParam(c, "list_articles", err)
			return
		}
	}
	if err := bindPagination(c, &p); err != nil {
		api.AbortInvalidParam(c, "list_articles", err)
		return
	}

	page, err := h.articles.ListArticles(c.Request.Context(), entity.Filter{
		Tag:        deref(tag),
		Author:     deref(author),
		Favorited:  deref(favorited),
		Pagination: p,
	})
	if err != nil {
		api.AbortWithError(c, "list_articles", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArticlesEnvelope(page))
}

// Feed は GET /api/articles/feed を処理します。フォロー中のユーザーの記事を返します。
func (h *ArticleHandler) Feed(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var p entity.Pagination
	if err := bindPagination(c, &p); err != nil {
		api.AbortInvalidParam(c, "list_feed", err)
		return
	}

	page, err := h.articles.ListFeed(c.Request.Context(), userID, p)
	if err != nil {
		api.AbortWithError(c, "list_feed", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArticlesEnvelope(page))
}

// Get は GET /api/articles/:slug を処理します。
func (h *ArticleHandler) Get(c *gin.Context) {
	a, err := h.articles.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		api.AbortWithError(c, "get_article", err)
		return
	}
	c.JSON(http.StatusOK, api.ArticleEnvelope{Article: dto.ToArticleResponse(a)})
}

// Create は POST /api/articles を処理します。
func (h *ArticleHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalidBody(c, "create_article", err)
		return
	}

	a, err := h.articles.CreateArticle(c.Request.Context(), userID, req.Draft())
	if err != nil {
		api.AbortWithError(c, "create_article", err)
		return
	}
	c.JSON(http.StatusCreated, api.ArticleEnvelope{Article: dto.ToArticleResponse(a)})
}

// Update は PUT /api/articles/:slug を処理します。作者のみが更新できます。
func (h *ArticleHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.UpdateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalidBody(c, "update_article", err)
		return
	}

	a, err := h.articles.UpdateArticle(c.Request.Context(), userID, c.Param("slug"), req.Patch())
	if err != nil {
		api.AbortWithError(c, "update_article", err)
		return
	}
	c.JSON(http.StatusOK, api.ArticleEnvelope{Article: dto.ToArticleResponse(a)})
}

// Delete は DELETE /api/articles/:slug を処理します。作者のみが削除できます。
func (h *ArticleHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.articles.DeleteArticle(c.Request.Context(), userID, c.Param("slug")); err != nil {
		api.AbortWithError(c, "delete_article", err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "article deleted"})
}

// requireUser は認証済みユーザーIDを返します。未認証なら401で中断します。
func requireUser(c *gin.Context) (uint, bool) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
	}
	return userID, ok
}

func bindPagination(c *gin.Context, p *entity.Pagination) error {
	var limit, offset *int
	q := c.Request.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return err
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", q, &offset); err != nil {
		return err
	}
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
