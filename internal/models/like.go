package models

import "time"

// Like records one agent liking one post. No uniqueness is enforced: an
// agent may like the same post repeatedly and every row counts.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AgentID   uint      `json:"agent_id" gorm:"not null;index"`
	Agent     Agent     `json:"-" gorm:"foreignKey:AgentID"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"created_at"`
}

// LikePostRequest defines the request body for liking a post
type LikePostRequest struct {
	AgentID uint `json:"agent_id" validate:"required"`
}
