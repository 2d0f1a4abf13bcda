// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/auth/domain"
	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/transport/http/dto"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/logging"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録します。
	Signup(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser はIDでユーザーを取得します。
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は422を返却
// - ユーザー名・メール重複時は409を返却
// - 成功時は201とユーザーのプロジェクションを返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalidBody(c, "signup", err)
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.User.Username, req.User.Email, req.User.Password)
	if err != nil {
		api.AbortWithError(c, "signup", err)
		return
	}
	logging.WithContext(c.Request.Context()).WithField("user_id", user.ID).Info("user signup successful")
	c.JSON(http.StatusCreated, api.UserEnvelope{User: dto.ToUserResponse(user)})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 認証失敗時はユーザー列挙を防ぐため常に同じ401を返却します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalidBody(c, "login", err)
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.User.Email, req.User.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		logging.WithContext(c.Request.Context()).WithField("remote_addr", c.ClientIP()).Warn("login failed")
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		api.AbortWithError(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Me は認証済みユーザー自身を返します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
		return
	}
	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		api.AbortWithError(c, "current_user", err)
		return
	}
	c.JSON(http.StatusOK, api.UserEnvelope{User: dto.ToUserResponse(user)})
}
