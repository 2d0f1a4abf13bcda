package adapters

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog_backend/internal/feature/article/domain"
	"blog_backend/internal/feature/article/domain/entity"
	"blog_backend/internal/feature/article/usecase"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/shared/apperr"
)

// articleGorm はArticleRepositoryインターフェースのGORM実装です。
type articleGorm struct {
	db *gorm.DB
}

var _ usecase.ArticleRepository = (*articleGorm)(nil)

// NewArticleGorm は記事リポジトリを生成します。
func NewArticleGorm(db *gorm.DB) *articleGorm {
	return &articleGorm{db: db}
}

// List はフィルタに一致する記事を新しい順に1ページ分返します。
// 件数はページング前の全体に対して数えます。
func (r *articleGorm) List(ctx context.Context, q usecase.Query) ([]entity.Article, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ArticleModel{}).Scopes(filter(q)).Count(&count).Error; err != nil {
		return nil, 0, apperr.Store(err)
	}
	if count == 0 {
		return []entity.Article{}, 0, nil
	}

	var models []ArticleModel
	err := r.db.WithContext(ctx).
		Scopes(filter(q), paginate(q.Pagination)).
		Preload("Author").
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, 0, apperr.Store(err)
	}

	articles := make([]entity.Article, 0, len(models))
	for _, m := range models {
		articles = append(articles, toArticle(m))
	}
	return articles, count, nil
}

// FindBySlug は作者とコメント（追加順）付きで記事を取得します。
func (r *articleGorm) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var m ArticleModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id ASC") }).
		Preload("Comments.User").
		Where("slug = ?", slug).
		First(&m).Error
	if err != nil {
		return nil, mapErr(err)
	}
	a := toArticle(m)
	return &a, nil
}

// Create は作者の存在を確認したうえで記事を挿入します。
func (r *articleGorm) Create(ctx context.Context, a *entity.Article) error {
	if a == nil {
		return errors.New("article is nil")
	}
	m := fromArticle(a)
	var author AuthorModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&author, a.AuthorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		return writeTags(tx, m.ID, m.TagList)
	})
	if err != nil {
		return mapErr(err)
	}

	a.ID = m.ID
	a.CreatedAt = m.CreatedAt
	a.UpdatedAt = m.UpdatedAt
	a.Author = toAuthor(&author)
	if a.Comments == nil {
		a.Comments = []entity.Comment{}
	}
	return nil
}

// Update はタイトル・説明・本文・タグのみを保存します。スラッグと作者は変更しません。
func (r *articleGorm) Update(ctx context.Context, a *entity.Article) error {
	m := fromArticle(a)
	m.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&ArticleModel{ID: a.ID}).
			Select("title", "description", "body", "tag_list", "updated_at").
			Updates(&m).Error
		if err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", a.ID).Delete(&ArticleTagModel{}).Error; err != nil {
			return err
		}
		return writeTags(tx, a.ID, m.TagList)
	})
	if err != nil {
		return mapErr(err)
	}
	a.UpdatedAt = m.UpdatedAt
	return nil
}

// Delete は記事の行とそのタグ索引を削除します。コメントとお気に入りはクリーンアップジョブが削除します。
func (r *articleGorm) Delete(ctx context.Context, articleID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&ArticleModel{}, articleID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrArticleNotFound
		}
		return tx.Where("article_id = ?", articleID).Delete(&ArticleTagModel{}).Error
	})
	return mapErr(err)
}

// AddComment はコメントを挿入し、記事の更新日時を進めます。
func (r *articleGorm) AddComment(ctx context.Context, c *entity.Comment) error {
	if c == nil {
		return errors.New("comment is nil")
	}
	m := CommentModel{Body: c.Body, ArticleID: c.ArticleID, UserID: c.AuthorID}
	var author AuthorModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&author, c.OwnerID()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		return touch(tx, c.ArticleID, m.CreatedAt)
	})
	if err != nil {
		return mapErr(err)
	}

	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	c.Author = toAuthor(&author)
	return nil
}

// DeleteComment はコメントを削除し、記事の更新日時を進めます。
func (r *articleGorm) DeleteComment(ctx context.Context, articleID, commentID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND article_id = ?", commentID, articleID).Delete(&CommentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return touch(tx, articleID, time.Now())
	})
	return mapErr(err)
}

// Favorite はお気に入りを追加し、再集計した件数を返します。既に存在する場合は何もしません。
func (r *articleGorm) Favorite(ctx context.Context, userID, articleID uint) (int, error) {
	return r.toggleFavorite(ctx, userID, articleID, func(tx *gorm.DB) *gorm.DB {
		edge := FavoriteModel{UserID: userID, ArticleID: articleID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge)
	})
}

// Unfavorite はお気に入りを削除し、再集計した件数を返します。存在しない場合は何もしません。
func (r *articleGorm) Unfavorite(ctx context.Context, userID, articleID uint) (int, error) {
	return r.toggleFavorite(ctx, userID, articleID, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ? AND article_id = ?", userID, articleID).Delete(&FavoriteModel{})
	})
}

// toggleFavorite はエッジの変更と favorite_count の再計算を1トランザクションで行います。
func (r *articleGorm) toggleFavorite(ctx context.Context, userID, articleID uint, write func(tx *gorm.DB) *gorm.DB) (int, error) {
	var count int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&ArticleModel{}, articleID).Error; err != nil {
			return err
		}
		if err := tx.Select("id").First(&AuthorModel{}, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		res := write(tx)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			edges := tx.Model(&FavoriteModel{}).Select("COUNT(*)").Where("article_id = ?", articleID)
			err := tx.Model(&ArticleModel{}).
				Where("id = ?", articleID).
				UpdateColumn("favorite_count", edges).Error
			if err != nil {
				return err
			}
		}

		var m ArticleModel
		if err := tx.Select("favorite_count").First(&m, articleID).Error; err != nil {
			return err
		}
		count = m.FavoriteCount
		return nil
	})
	if err != nil {
		return 0, mapErr(err)
	}
	return count, nil
}

// touch は記事の updated_at を at に更新します。
func touch(tx *gorm.DB, articleID uint, at time.Time) error {
	res := tx.Model(&ArticleModel{}).Where("id = ?", articleID).UpdateColumn("updated_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// writeTags は記事のタグ索引を挿入します。
func writeTags(tx *gorm.DB, articleID uint, tags []string) error {
	rows := tagRows(articleID, tags)
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// likeEscaper escapes LIKE wildcards with '!', which needs no quoting on any supported dialect.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func filter(q usecase.Query) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if q.Tag != "" {
			tagged := tx.Session(&gorm.Session{NewDB: true}).
				Model(&ArticleTagModel{}).
				Select("article_id").
				Where("tag LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(q.Tag)+"%")
			tx = tx.Where("id IN (?)", tagged)
		}
		if q.AuthorIDs != nil {
			tx = tx.Where("author_id IN ?", q.AuthorIDs)
		}
		if q.FavoritedBy != 0 {
			favorited := tx.Session(&gorm.Session{NewDB: true}).
				Model(&FavoriteModel{}).
				Select("article_id").
				Where("user_id = ?", q.FavoritedBy)
			tx = tx.Where("id IN (?)", favorited)
		}
		return tx
	}
}

func paginate(p entity.Pagination) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if p.Limit > 0 {
			tx = tx.Limit(p.Limit)
		}
		if p.Offset > 0 {
			if p.Limit <= 0 {
				// OFFSET without LIMIT is not valid SQL on MySQL
				tx = tx.Limit(math.MaxInt32)
			}
			tx = tx.Offset(p.Offset)
		}
		return tx
	}
}

// mapErr はストアのエラーをドメインのエラーに変換します。
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrArticleNotFound
	case db.IsDuplicateKey(err):
		return domain.ErrSlugTaken
	case apperr.IsKnown(err):
		return err
	default:
		return apperr.Store(err)
	}
}
