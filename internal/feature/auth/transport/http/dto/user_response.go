package dto

import (
	"blog_backend/internal/api"
	"blog_backend/internal/feature/auth/domain/entity"
)

// ToUserResponse projects a user onto its public shape. Email and password never leave.
func ToUserResponse(u *entity.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
