package adapters

import (
	"context"

	"gorm.io/gorm"

	"blog_backend/internal/feature/article/domain/entity"
	"blog_backend/internal/feature/article/usecase"
	"blog_backend/internal/shared/apperr"
)

type maintenanceGorm struct {
	db *gorm.DB
}

var _ usecase.MaintenanceRepository = (*maintenanceGorm)(nil)

// NewMaintenanceGorm はクリーンアップ用のリポジトリを生成します。
func NewMaintenanceGorm(db *gorm.DB) *maintenanceGorm {
	return &maintenanceGorm{db: db}
}

// PurgeOrphans は削除済みの記事・ユーザーを参照する行を1トランザクションで片付け、
// 全記事の favorite_count をエッジから再計算します。
func (r *maintenanceGorm) PurgeOrphans(ctx context.Context) (entity.OrphanReport, error) {
	var report entity.OrphanReport

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		articleIDs := tx.Model(&ArticleModel{}).Select("id")
		userIDs := tx.Model(&AuthorModel{}).Select("id")

		res := tx.Where("article_id NOT IN (?)", articleIDs).Delete(&CommentModel{})
		if res.Error != nil {
			return res.Error
		}
		report.Comments = res.RowsAffected

		res = tx.Where("article_id NOT IN (?) OR user_id NOT IN (?)", articleIDs, userIDs).Delete(&FavoriteModel{})
		if res.Error != nil {
			return res.Error
		}
		report.Favorites = res.RowsAffected

		res = tx.Model(&CommentModel{}).
			Where("user_id IS NOT NULL AND user_id NOT IN (?)", userIDs).
			UpdateColumn("user_id", gorm.Expr("NULL"))
		if res.Error != nil {
			return res.Error
		}
		report.DetachedComments = res.RowsAffected

		res = tx.Model(&ArticleModel{}).
			Where("1 = 1").
			UpdateColumn("favorite_count", gorm.Expr("(SELECT COUNT(*) FROM favorites WHERE favorites.article_id = articles.id)"))
		if res.Error != nil {
			return res.Error
		}
		report.RecountedArticles = res.RowsAffected
		return nil
	})
	if err != nil {
		return entity.OrphanReport{}, apperr.Store(err)
	}
	return report, nil
}
