// Package dto はarticleフィーチャーのリクエストとレスポンスの変換を定義します。
package dto

import "blog_backend/internal/feature/article/domain/entity"

// CreateArticleReq は POST /api/articles のリクエストボディです。
type CreateArticleReq struct {
	Article struct {
		Title       string   `json:"title" binding:"required,max=255"`
		Description string   `json:"description"`
		Body        string   `json:"body" binding:"required"`
		TagList     []string `json:"tagList" binding:"dive,required,max=64"`
	} `json:"article" binding:"required"`
}

// Draft converts the request into the author-supplied fields of a new article.
func (r CreateArticleReq) Draft() entity.Draft {
	return entity.Draft{
		Title:       r.Article.Title,
		Description: r.Article.Description,
		Body:        r.Article.Body,
		TagList:     r.Article.TagList,
	}
}

// UpdateArticleReq は PUT /api/articles/:slug のリクエストボディです。
// 省略したフィールドは現在の値のまま残ります。
type UpdateArticleReq struct {
	Article struct {
		Title       *string   `json:"title" binding:"omitempty,min=1,max=255"`
		Description *string   `json:"description"`
		Body        *string   `json:"body" binding:"omitempty,min=1"`
		TagList     *[]string `json:"tagList"`
	} `json:"article" binding:"required"`
}

// Patch converts the request into a partial update.
func (r UpdateArticleReq) Patch() entity.Patch {
	return entity.Patch{
		Title:       r.Article.Title,
		Description: r.Article.Description,
		Body:        r.Article.Body,
		TagList:     r.Article.TagList,
	}
}

// AddCommentReq は POST /api/articles/:slug/comments のリクエストボディです。
type AddCommentReq struct {
	Comment struct {
		Body string `json:"body" binding:"required"`
	} `json:"comment" binding:"required"`
}
