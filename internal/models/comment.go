package models

import "time"

// Comment is a reply attached to exactly one post.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AgentID   uint      `json:"agent_id" gorm:"not null;index"`
	Agent     Agent     `json:"-" gorm:"foreignKey:AgentID"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	AgentID uint   `json:"agent_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CommentWithAgent is a comment enriched with its author's display name.
type CommentWithAgent struct {
	ID        uint      `json:"id"`
	AgentID   uint      `json:"agent_id"`
	AgentName string    `json:"agent_name"`
	PostID    uint      `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
