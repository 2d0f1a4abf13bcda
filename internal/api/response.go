// Package api defines the JSON shapes that cross the HTTP boundary.
// Feature packages project their entities into these types; nothing here
// depends on a feature, so every handler can share them.
package api

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public projection of a user. It has no email or
// password field, so neither can leak through an article or comment.
type UserResponse struct {
	ID        uint              `json:"id"`
	Username  string            `json:"username"`
	CreatedAt time.Time         `json:"createdAt"`
	Articles  []ArticleResponse `json:"articles,omitempty"`
}

// ProfileResponse is a user as seen by a (possibly anonymous) viewer.
type ProfileResponse struct {
	Username       string `json:"username"`
	Bio            string `json:"bio"`
	Image          string `json:"image"`
	Following      bool   `json:"following"`
	FollowersCount int    `json:"followersCount"`
}

// CommentResponse is a comment with its author's projection, if the author still exists.
type CommentResponse struct {
	ID        uint          `json:"id"`
	Body      string        `json:"body"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	User      *UserResponse `json:"user,omitempty"`
}

// ArticleResponse is an article with its author and, when loaded, its comments.
type ArticleResponse struct {
	ID             uint              `json:"id"`
	Slug           string            `json:"slug"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Body           string            `json:"body"`
	TagList        []string          `json:"tagList"`
	FavoritesCount int               `json:"favoritesCount"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Author         UserResponse      `json:"author"`
	Comments       []CommentResponse `json:"comments,omitempty"`
}

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// ProfileEnvelope wraps a single profile.
type ProfileEnvelope struct {
	Profile ProfileResponse `json:"profile"`
}

// ArticleEnvelope wraps a single article.
type ArticleEnvelope struct {
	Article ArticleResponse `json:"article"`
}

// ArticlesEnvelope wraps a page of articles and the size of the whole filtered set.
type ArticlesEnvelope struct {
	Articles      []ArticleResponse `json:"articles"`
	ArticlesCount int64             `json:"articlesCount"`
}

// CommentsEnvelope wraps the comments of one article.
type CommentsEnvelope struct {
	Comments []CommentResponse `json:"comments"`
}

// TagsEnvelope wraps the tag listing.
type TagsEnvelope struct {
	Tags []string `json:"tags"`
}
