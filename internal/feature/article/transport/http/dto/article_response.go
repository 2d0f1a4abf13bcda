package dto

import (
	"blog_backend/internal/api"
	"blog_backend/internal/feature/article/domain/entity"
)

// ToAuthorResponse projects an author onto the public user shape. It returns nil for nil.
func ToAuthorResponse(a *entity.Author) *api.UserResponse {
	if a == nil {
		return nil
	}
	return &api.UserResponse{
		ID:        a.ID,
		Username:  a.Username,
		CreatedAt: a.CreatedAt,
	}
}

// ToCommentResponse projects a comment. A detached comment has no user.
func ToCommentResponse(c entity.Comment) api.CommentResponse {
	return api.CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		User:      ToAuthorResponse(c.Author),
	}
}

// ToCommentResponses projects comments in order. The result is never nil.
func ToCommentResponses(comments []entity.Comment) []api.CommentResponse {
	out := make([]api.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}

// ToArticleResponse projects an article with its author and loaded comments.
func ToArticleResponse(a *entity.Article) api.ArticleResponse {
	tags := a.TagList
	if tags == nil {
		tags = []string{}
	}
	resp := api.ArticleResponse{
		ID:             a.ID,
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tags,
		FavoritesCount: a.FavoriteCount,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if author := ToAuthorResponse(a.Author); author != nil {
		resp.Author = *author
	} else {
		resp.Author = api.UserResponse{ID: a.AuthorID}
	}
	if len(a.Comments) > 0 {
		resp.Comments = ToCommentResponses(a.Comments)
	}
	return resp
}

// ToArticlesEnvelope projects one page of a listing.
func ToArticlesEnvelope(p entity.Page) api.ArticlesEnvelope {
	articles := make([]api.ArticleResponse, 0, len(p.Articles))
	for i := range p.Articles {
		articles = append(articles, ToArticleResponse(&p.Articles[i]))
	}
	return api.ArticlesEnvelope{Articles: articles, ArticlesCount: p.Count}
}
