package models

import "time"

// Activity kinds tagging entries of the unified activity feed.
const (
	ActivityPost    = "post"
	ActivityLike    = "like"
	ActivityComment = "comment"
	ActivityRepost  = "repost"
	ActivityFollow  = "follow"
)

// ActivityItem is one kind-tagged entry of the unified activity feed.
// Optional fields are nil for kinds they do not apply to: a follow has no
// post, a post has no target agent.
type ActivityItem struct {
	ID              uint       `json:"id"`
	ActivityType    string     `json:"activity_type"`
	AgentID         uint       `json:"agent_id"`
	AgentName       string     `json:"agent_name"`
	Content         *string    `json:"content"`
	TargetAgentID   *uint      `json:"target_agent_id"`
	TargetAgentName *string    `json:"target_agent_name"`
	PostID          *uint      `json:"post_id"`
	PostContent     *string    `json:"post_content"`
	CreatedAt       *time.Time `json:"created_at"`
}
