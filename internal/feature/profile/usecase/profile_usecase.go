// Package usecase implements profile lookups and the follow relation.
package usecase

import (
	"context"
	"errors"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/profile/domain"
	"blog_backend/internal/feature/profile/domain/entity"
	"blog_backend/internal/shared/apperr"
)

// FollowRepository persists follow edges. Follow and Unfollow are idempotent.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
}

// UserFinder resolves users; it is satisfied by the auth user repository.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*authentity.User, error)
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

type profileUsecase struct {
	users   UserFinder
	follows FollowRepository
}

// NewProfileUsecase wires the profile usecase to its stores.
func NewProfileUsecase(users UserFinder, follows FollowRepository) *profileUsecase {
	return &profileUsecase{users: users, follows: follows}
}

// GetProfile returns the profile of username as seen by viewerID (0 for anonymous).
func (u *profileUsecase) GetProfile(ctx context.Context, viewerID uint, username string) (*entity.Profile, error) {
	target, err := u.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	return u.build(ctx, viewerID, target)
}

// Follow makes followerID follow username and returns the updated profile.
func (u *profileUsecase) Follow(ctx context.Context, followerID uint, username string) (*entity.Profile, error) {
	target, err := u.prepareEdge(ctx, followerID, username)
	if err != nil {
		return nil, err
	}
	if err := u.follows.Follow(ctx, followerID, target.ID); err != nil {
		return nil, err
	}
	return u.build(ctx, followerID, target)
}

// Unfollow removes the edge followerID -> username and returns the updated profile.
func (u *profileUsecase) Unfollow(ctx context.Context, followerID uint, username string) (*entity.Profile, error) {
	target, err := u.prepareEdge(ctx, followerID, username)
	if err != nil {
		return nil, err
	}
	if err := u.follows.Unfollow(ctx, followerID, target.ID); err != nil {
		return nil, err
	}
	return u.build(ctx, followerID, target)
}

// prepareEdge checks both ends of a follow edge before it is written.
func (u *profileUsecase) prepareEdge(ctx context.Context, followerID uint, username string) (*authentity.User, error) {
	target, err := u.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	if target.ID == followerID {
		return nil, domain.ErrSelfFollow
	}
	if _, err := u.users.FindByID(ctx, followerID); err != nil {
		return nil, err
	}
	return target, nil
}

func (u *profileUsecase) lookup(ctx context.Context, username string) (*authentity.User, error) {
	target, err := u.users.FindByUsername(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return target, nil
}

func (u *profileUsecase) build(ctx context.Context, viewerID uint, target *authentity.User) (*entity.Profile, error) {
	followers, err := u.follows.CountFollowers(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	following := false
	if viewerID != 0 {
		if following, err = u.follows.IsFollowing(ctx, viewerID, target.ID); err != nil {
			return nil, err
		}
	}
	return &entity.Profile{
		UserID:         target.ID,
		Username:       target.Username,
		Bio:            target.Bio,
		Image:          target.Image,
		Following:      following,
		FollowersCount: int(followers),
	}, nil
}
