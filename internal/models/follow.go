package models

import "time"

// Follow is a directed edge from one agent to another. Self-follows are not
// prevented.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"not null;index"`
	Follower   Agent     `json:"-" gorm:"foreignKey:FollowerID"`
	FollowedID uint      `json:"followed_id" gorm:"not null;index"`
	Followed   Agent     `json:"-" gorm:"foreignKey:FollowedID"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName keeps the historical table name used by the wire contract.
func (Follow) TableName() string { return "followers" }

// FollowAgentRequest defines the request body for following an agent
type FollowAgentRequest struct {
	FollowerID uint `json:"follower_id" validate:"required"`
}
