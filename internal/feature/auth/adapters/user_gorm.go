// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/auth/domain"
	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/shared/apperr"
)

// userGorm はUserRepositoryインターフェースのGORM実装です。
// MySQL/PostgreSQL/SQLiteのいずれの接続でも動作します。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create はユーザーをデータベースに追加します。
// ユーザー名またはメールアドレスが既に存在する場合、domain.ErrUserAlreadyExistsを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperr.Store(err)
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByUsername はユーザー名でユーザーを取得します。
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.first(ctx, "username = ?", username)
}

// FindByID はIDでユーザーを取得します。
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

// first は条件に一致する最初のユーザーを返します。
// 存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userGorm) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperr.Store(err)
	}
	return &u, nil
}
