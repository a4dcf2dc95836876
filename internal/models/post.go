package models

import "time"

// Post is an immutable message owned by exactly one agent. created_at is
// server-assigned at insert time.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AgentID   uint      `json:"agent_id" gorm:"not null;index"`
	Agent     Agent     `json:"-" gorm:"foreignKey:AgentID"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	AgentID uint   `json:"agent_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// FeedPost is a post joined with its author name and live engagement counts.
// Counts are recomputed by aggregation on every read; they are never stored.
type FeedPost struct {
	ID            uint      `json:"id"`
	AgentID       uint      `json:"agent_id"`
	AgentName     string    `json:"agent_name"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	RepostsCount  int64     `json:"reposts_count"`
}
