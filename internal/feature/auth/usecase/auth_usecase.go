// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"blog_backend/internal/feature/auth/domain"
	"blog_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// dummyHash はユーザーが存在しない場合のタイミング攻撃緩和用です。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// ユーザー名またはメールアドレスが重複する場合、domain.ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, username string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domain.ErrWeakPassword
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// ハッシュ化はentity.NewUserの中で一度だけ行われます。
func (u *authUsecase) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	user, err := entity.NewUser(username, email, password)
	if err != nil {
		return nil, err
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		// ストア障害は認証失敗として隠さない
		return "", err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Username)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// CurrentUser はトークンで識別されたユーザーを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
