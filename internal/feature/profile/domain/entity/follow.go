// Package entity defines the follow relation and the profile view built from it.
package entity

import "time"

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	FollowerID  uint `gorm:"primaryKey;autoIncrement:false"`
	FollowingID uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt   time.Time
}

// TableName pins the table name regardless of naming strategy.
func (Follow) TableName() string {
	return "follows"
}

// Profile is a user as seen by a viewer.
type Profile struct {
	UserID         uint
	Username       string
	Bio            string
	Image          string
	Following      bool
	FollowersCount int
}
