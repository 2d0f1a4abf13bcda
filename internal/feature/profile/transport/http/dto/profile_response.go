// Package dto projects profiles onto their HTTP shape.
package dto

import (
	"blog_backend/internal/api"
	"blog_backend/internal/feature/profile/domain/entity"
)

// ToProfileResponse projects a profile.
func ToProfileResponse(p *entity.Profile) api.ProfileResponse {
	return api.ProfileResponse{
		Username:       p.Username,
		Bio:            p.Bio,
		Image:          p.Image,
		Following:      p.Following,
		FollowersCount: p.FollowersCount,
	}
}
