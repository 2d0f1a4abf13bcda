package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/article/transport/http/dto"
)

// ListComments は GET /api/articles/:slug/comments を処理します。
func (h *ArticleHandler) ListComments(c *gin.Context) {
	comments, err := h.articles.ListComments(c.Request.Context(), c.Param("slug"))
	if err != nil {
		api.AbortWithError(c, "list_comments", err)
		return
	}
	c.JSON(http.StatusOK, api.CommentsEnvelope{Comments: dto.ToCommentResponses(comments)})
}

// AddComment は POST /api/articles/:slug/comments を処理します。
// レスポンスはコメントを含む記事全体です。
func (h *ArticleHandler) AddComment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.AddCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalidBody(c, "add_comment", err)
		return
	}

	a, err := h.articles.AddComment(c.Request.Context(), userID, c.Param("slug"), req.Comment.Body)
	if err != nil {
		api.AbortWithError(c, "add_comment", err)
		return
	}
	c.JSON(http.StatusCreated, api.ArticleEnvelope{Article: dto.ToArticleResponse(a)})
}

// DeleteComment は DELETE /api/articles/:slug/comments/:id を処理します。
// コメントの作者または記事の作者のみが削除できます。
func (h *ArticleHandler) DeleteComment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var commentID uint
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &commentID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		api.AbortInvalidParam(c, "delete_comment", err)
		return
	}

	a, err := h.articles.DeleteComment(c.Request.Context(), userID, c.Param("slug"), commentID)
	if err != nil {
		api.AbortWithError(c, "delete_comment", err)
		return
	}
	c.JSON(http.StatusOK, api.ArticleEnvelope{Article: dto.ToArticleResponse(a)})
}
