// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/profile/domain/entity"
	"blog_backend/internal/feature/profile/transport/http/dto"
	jwtmw "blog_backend/internal/platform/jwt"
)

// ProfileUsecase はプロフィール操作のユースケースを定義します。
type ProfileUsecase interface {
	GetProfile(ctx context.Context, viewerID uint, username string) (*entity.Profile, error)
	Follow(ctx context.Context, followerID uint, username string) (*entity.Profile, error)
	Unfollow(ctx context.Context, followerID uint, username string) (*entity.Profile, error)
}

// ProfileHandler は /api/profiles 配下のリクエストを処理します。
type ProfileHandler struct {
	profiles ProfileUsecase
}

// NewProfileHandler はProfileHandlerを生成します。
func NewProfileHandler(profiles ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get は GET /api/profiles/:username を処理します。認証は任意です。
func (h *ProfileHandler) Get(c *gin.Context) {
	viewerID, _ := jwtmw.UserID(c)
	p, err := h.profiles.GetProfile(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		api.AbortWithError(c, "get_profile", err)
		return
	}
	c.JSON(http.StatusOK, api.ProfileEnvelope{Profile: dto.ToProfileResponse(p)})
}

// Follow は POST /api/profiles/:username/follow を処理します。
func (h *ProfileHandler) Follow(c *gin.Context) {
	h.mutate(c, "follow", h.profiles.Follow)
}

// Unfollow は DELETE /api/profiles/:username/follow を処理します。
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	h.mutate(c, "unfollow", h.profiles.Unfollow)
}

func (h *ProfileHandler) mutate(c *gin.Context, op string, fn func(context.Context, uint, string) (*entity.Profile, error)) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
		return
	}
	p, err := fn(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		api.AbortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, api.ProfileEnvelope{Profile: dto.ToProfileResponse(p)})
}
