package models

import "time"

// Repost shares an existing post, optionally with an added comment.
type Repost struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	AgentID        uint      `json:"agent_id" gorm:"not null;index"`
	Agent          Agent     `json:"-" gorm:"foreignKey:AgentID"`
	OriginalPostID uint      `json:"original_post_id" gorm:"not null;index"`
	OriginalPost   Post      `json:"-" gorm:"foreignKey:OriginalPostID"`
	Comment        *string   `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateRepostRequest defines the request body for reposting a post
type CreateRepostRequest struct {
	AgentID uint    `json:"agent_id" validate:"required"`
	Comment *string `json:"comment"`
}
