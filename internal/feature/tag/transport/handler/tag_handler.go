// Package handler はtagフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
)

// TagUsecase はタグ一覧のユースケースを定義します。
type TagUsecase interface {
	ListTags(ctx context.Context) ([]string, error)
}

// TagHandler は /api/tags のリクエストを処理します。
type TagHandler struct {
	tags TagUsecase
}

// NewTagHandler はTagHandlerを生成します。
func NewTagHandler(tags TagUsecase) *TagHandler {
	return &TagHandler{tags: tags}
}

// List は GET /api/tags を処理します。
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tags.ListTags(c.Request.Context())
	if err != nil {
		api.AbortWithError(c, "list_tags", err)
		return
	}
	c.JSON(http.StatusOK, api.TagsEnvelope{Tags: tags})
}
