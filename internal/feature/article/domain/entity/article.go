// Package entity defines articles, their comments and the rules that guard them.
package entity

import (
	"time"

	"blog_backend/internal/feature/article/domain"
)

// Author is the part of a user an article or comment carries around.
type Author struct {
	ID        uint
	Username  string
	CreatedAt time.Time
}

// Comment belongs to exactly one article. AuthorID is nil once its author is deleted.
type Comment struct {
	ID        uint
	Body      string
	ArticleID uint
	AuthorID  *uint
	Author    *Author
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID returns the comment author's id, or 0 for a detached comment.
func (c *Comment) OwnerID() uint {
	if c.AuthorID == nil {
		return 0
	}
	return *c.AuthorID
}

// Article is a published post. Comments are kept in append order.
type Article struct {
	ID            uint
	Slug          string
	Title         string
	Description   string
	Body          string
	TagList       []string
	FavoriteCount int
	AuthorID      uint
	Author        *Author
	Comments      []Comment
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnerID returns the id of the article's author.
func (a *Article) OwnerID() uint {
	return a.AuthorID
}

// CommentIndex returns the position of comment id in the collection.
func (a *Article) CommentIndex(id uint) (int, bool) {
	for i := range a.Comments {
		if a.Comments[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// RemoveComment drops the comment at index i, keeping the order of the rest.
func (a *Article) RemoveComment(i int) {
	a.Comments = append(a.Comments[:i:i], a.Comments[i+1:]...)
}

// Owned is anything with a single owning user.
type Owned interface {
	OwnerID() uint
}

// EnsureOwner fails with domain.ErrNotOwner unless actorID owns o.
// An anonymous actor (0) never owns anything.
func EnsureOwner(o Owned, actorID uint) error {
	if actorID == 0 || o.OwnerID() != actorID {
		return domain.ErrNotOwner
	}
	return nil
}
