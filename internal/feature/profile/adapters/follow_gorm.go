// Package adapters はprofileフィーチャーのフォロー関係のGORM実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog_backend/internal/feature/profile/domain/entity"
	"blog_backend/internal/feature/profile/usecase"
	"blog_backend/internal/shared/apperr"
)

type followGorm struct {
	db *gorm.DB
}

var _ usecase.FollowRepository = (*followGorm)(nil)

// NewFollowGorm はフォロー関係リポジトリを生成します。
func NewFollowGorm(db *gorm.DB) *followGorm {
	return &followGorm{db: db}
}

// Follow はフォロー関係を追加します。既に存在する場合は何もしません。
func (r *followGorm) Follow(ctx context.Context, followerID, followingID uint) error {
	edge := entity.Follow{FollowerID: followerID, FollowingID: followingID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
	return apperr.Store(err)
}

// Unfollow はフォロー関係を削除します。存在しない場合は何もしません。
func (r *followGorm) Unfollow(ctx context.Context, followerID, followingID uint) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entity.Follow{}).Error
	return apperr.Store(err)
}

// IsFollowing はfollowerIDがfollowingIDをフォローしているかを返します。
func (r *followGorm) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&n).Error
	if err != nil {
		return false, apperr.Store(err)
	}
	return n > 0, nil
}

// FollowingIDs はuserIDがフォローしているユーザーIDの一覧を返します。
func (r *followGorm) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&entity.Follow{}).
		Where("follower_id = ?", userID).
		Order("following_id").
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return ids, nil
}

// CountFollowers はuserIDをフォローしているユーザー数を返します。
func (r *followGorm) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Follow{}).
		Where("following_id = ?", userID).
		Count(&n).Error
	if err != nil {
		return 0, apperr.Store(err)
	}
	return n, nil
}
