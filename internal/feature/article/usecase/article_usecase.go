// Package usecase implements the article, feed, favorite and comment rules.
package usecase

import (
	"context"
	"errors"

	"blog_backend/internal/feature/article/domain/entity"
	"blog_backend/internal/platform/logging"
	"blog_backend/internal/shared/apperr"
	"blog_backend/internal/shared/slugify"
)

type articleUsecase struct {
	articles ArticleRepository
	users    UserLookup
	follows  FollowLookup
	tags     TagInvalidator
	slug     func(title string) string
}

// NewArticleUsecase wires the article service to its stores. tags may be nil.
func NewArticleUsecase(articles ArticleRepository, users UserLookup, follows FollowLookup, tags TagInvalidator) *articleUsecase {
	return &articleUsecase{
		articles: articles,
		users:    users,
		follows:  follows,
		tags:     tags,
		slug:     slugify.Make,
	}
}

// ListArticles returns one page of articles matching f.
// An unknown author or favorited username matches nothing instead of failing.
func (u *articleUsecase) ListArticles(ctx context.Context, f entity.Filter) (entity.Page, error) {
	q := Query{Tag: f.Tag, Pagination: f.Pagination}

	if f.Author != "" {
		id, found, err := u.resolve(ctx, f.Author)
		if err != nil {
			return entity.Page{}, err
		}
		if !found {
			return entity.EmptyPage(), nil
		}
		q.AuthorIDs = []uint{id}
	}
	if f.Favorited != "" {
		id, found, err := u.resolve(ctx, f.Favorited)
		if err != nil {
			return entity.Page{}, err
		}
		if !found {
			return entity.EmptyPage(), nil
		}
		q.FavoritedBy = id
	}

	return u.list(ctx, q)
}

// ListFeed returns articles written by the users userID follows.
// Following nobody yields an empty page without touching the content store.
func (u *articleUsecase) ListFeed(ctx context.Context, userID uint, p entity.Pagination) (entity.Page, error) {
	ids, err := u.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return entity.Page{}, err
	}
	if len(ids) == 0 {
		return entity.EmptyPage(), nil
	}
	return u.list(ctx, Query{AuthorIDs: ids, Pagination: p})
}

// GetArticle loads an article by slug.
func (u *articleUsecase) GetArticle(ctx context.Context, slug string) (*entity.Article, error) {
	return u.articles.FindBySlug(ctx, slug)
}

// CreateArticle publishes a new article for authorID under a freshly generated slug.
func (u *articleUsecase) CreateArticle(ctx context.Context, authorID uint, d entity.Draft) (*entity.Article, error) {
	a := entity.NewArticle(authorID, d, u.slug(d.Title))
	if err := u.articles.Create(ctx, a); err != nil {
		return nil, err
	}
	if len(a.TagList) > 0 {
		u.invalidateTags(ctx)
	}
	return a, nil
}

// UpdateArticle merges patch into the article if userID wrote it.
// The slug stays the same even when the title changes.
func (u *articleUsecase) UpdateArticle(ctx context.Context, userID uint, slug string, patch entity.Patch) (*entity.Article, error) {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := entity.EnsureOwner(a, userID); err != nil {
		return nil, err
	}

	tagsChanged := patch.Apply(a)
	if err := u.articles.Update(ctx, a); err != nil {
		return nil, err
	}
	if tagsChanged {
		u.invalidateTags(ctx)
	}
	return a, nil
}

// DeleteArticle removes the article if userID wrote it.
func (u *articleUsecase) DeleteArticle(ctx context.Context, userID uint, slug string) error {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := entity.EnsureOwner(a, userID); err != nil {
		return err
	}
	if err := u.articles.Delete(ctx, a.ID); err != nil {
		return err
	}
	if len(a.TagList) > 0 {
		u.invalidateTags(ctx)
	}
	return nil
}

// ListComments returns the article's comments in append order.
func (u *articleUsecase) ListComments(ctx context.Context, slug string) ([]entity.Comment, error) {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return a.Comments, nil
}

// AddComment appends a comment by userID and returns the article with it.
func (u *articleUsecase) AddComment(ctx context.Context, userID uint, slug, body string) (*entity.Article, error) {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	c := &entity.Comment{Body: body, ArticleID: a.ID, AuthorID: &userID}
	if err := u.articles.AddComment(ctx, c); err != nil {
		return nil, err
	}

	a.Comments = append(a.Comments, *c)
	a.UpdatedAt = c.CreatedAt
	return a, nil
}

// DeleteComment removes comment commentID from the article.
// A comment that is not part of the article leaves it unchanged. Otherwise the
// actor must have written either the comment or the article.
func (u *articleUsecase) DeleteComment(ctx context.Context, userID uint, slug string, commentID uint) (*entity.Article, error) {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	i, ok := a.CommentIndex(commentID)
	if !ok {
		return a, nil
	}
	if entity.EnsureOwner(&a.Comments[i], userID) != nil {
		if err := entity.EnsureOwner(a, userID); err != nil {
			return nil, err
		}
	}

	if err := u.articles.DeleteComment(ctx, a.ID, commentID); err != nil {
		return nil, err
	}
	a.RemoveComment(i)
	return a, nil
}

// Favorite records that userID favorited the article. Repeating it changes nothing.
func (u *articleUsecase) Favorite(ctx context.Context, userID uint, slug string) (*entity.Article, error) {
	return u.toggleFavorite(ctx, slug, func(articleID uint) (int, error) {
		return u.articles.Favorite(ctx, userID, articleID)
	})
}

// Unfavorite removes userID's favorite. Repeating it changes nothing.
func (u *articleUsecase) Unfavorite(ctx context.Context, userID uint, slug string) (*entity.Article, error) {
	return u.toggleFavorite(ctx, slug, func(articleID uint) (int, error) {
		return u.articles.Unfavorite(ctx, userID, articleID)
	})
}

func (u *articleUsecase) toggleFavorite(ctx context.Context, slug string, write func(articleID uint) (int, error)) (*entity.Article, error) {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	count, err := write(a.ID)
	if err != nil {
		return nil, err
	}
	a.FavoriteCount = count
	return a, nil
}

func (u *articleUsecase) list(ctx context.Context, q Query) (entity.Page, error) {
	articles, count, err := u.articles.List(ctx, q)
	if err != nil {
		return entity.Page{}, err
	}
	if articles == nil {
		articles = []entity.Article{}
	}
	return entity.Page{Articles: articles, Count: count}, nil
}

// resolve maps a username to an id. found is false for an unknown username.
func (u *articleUsecase) resolve(ctx context.Context, username string) (id uint, found bool, err error) {
	user, err := u.users.FindByUsername(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return user.ID, true, nil
}

// invalidateTags is best effort: a stale tag cache expires on its own.
func (u *articleUsecase) invalidateTags(ctx context.Context) {
	if u.tags == nil {
		return
	}
	if err := u.tags.Invalidate(ctx); err != nil {
		logging.WithContext(ctx).WithError(err).Warn("tag cache invalidation failed")
	}
}
