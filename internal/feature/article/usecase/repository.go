package usecase

import (
	"context"

	"blog_backend/internal/feature/article/domain/entity"
	authentity "blog_backend/internal/feature/auth/domain/entity"
)

// Query is what the store needs to select articles. Usernames are already resolved.
// A nil AuthorIDs means any author; FavoritedBy 0 means no favorite filter.
type Query struct {
	Tag         string
	AuthorIDs   []uint
	FavoritedBy uint
	entity.Pagination
}

// ArticleRepository abstracts the content store.
// Every method that writes more than one row runs in a single transaction.
type ArticleRepository interface {
	// List returns one page ordered newest first, plus the size of the whole filtered set.
	List(ctx context.Context, q Query) ([]entity.Article, int64, error)

	// FindBySlug loads an article with its author and its comments in append order.
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)

	// Create verifies the author exists and inserts the article, filling ids,
	// timestamps and the author projection.
	Create(ctx context.Context, a *entity.Article) error

	// Update persists title, description, body and tag list only.
	Update(ctx context.Context, a *entity.Article) error

	// Delete removes the article row. Comments and favorites are left for maintenance.
	Delete(ctx context.Context, articleID uint) error

	// AddComment verifies the author exists, inserts the comment and touches the article.
	AddComment(ctx context.Context, c *entity.Comment) error

	// DeleteComment removes the comment and touches the article.
	DeleteComment(ctx context.Context, articleID, commentID uint) error

	// Favorite adds the edge if missing, recounts and returns the fresh favorite count.
	Favorite(ctx context.Context, userID, articleID uint) (int, error)

	// Unfavorite removes the edge if present, recounts and returns the fresh favorite count.
	Unfavorite(ctx context.Context, userID, articleID uint) (int, error)
}

// UserLookup resolves the usernames used as filters.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*authentity.User, error)
}

// FollowLookup resolves the follow graph for the feed.
type FollowLookup interface {
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
}

// TagInvalidator drops cached tag listings after the set of tags may have changed.
type TagInvalidator interface {
	Invalidate(ctx context.Context) error
}

// MaintenanceRepository removes rows left behind by deletions.
type MaintenanceRepository interface {
	PurgeOrphans(ctx context.Context) (entity.OrphanReport, error)
}
