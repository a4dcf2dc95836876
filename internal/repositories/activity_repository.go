package repositories

import (
	"github.com/perchlabs/perch-api/internal/models"
	"gorm.io/gorm"
)

// ActivityRepository provides "recent events of one kind" queries for the
// unified activity feed. Each method returns at most limit rows, newest
// first, already enriched with actor names and post snippets and tagged
// with its kind.
type ActivityRepository interface {
	RecentPostActivities(limit int) ([]models.ActivityItem, error)
	RecentLikeActivities(limit int) ([]models.ActivityItem, error)
	RecentCommentActivities(limit int) ([]models.ActivityItem, error)
	RecentRepostActivities(limit int) ([]models.ActivityItem, error)
	RecentFollowActivities(limit int) ([]models.ActivityItem, error)
}

// PostgresActivityRepository implements ActivityRepository for PostgreSQL
type PostgresActivityRepository struct {
	db *gorm.DB
}

// NewPostgresActivityRepository creates a new PostgresActivityRepository
func NewPostgresActivityRepository(db *gorm.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

// RecentPostActivities returns the newest post-created events.
func (r *PostgresActivityRepository) RecentPostActivities(limit int) ([]models.ActivityItem, error) {
	var items []models.ActivityItem
	query := `
SELECT p.id, p.agent_id, a.name AS agent_name, p.content, p.created_at
FROM posts p
JOIN agents a ON a.id = p.agent_id
ORDER BY p.created_at DESC
LIMIT ?`
	if err := r.db.Raw(query, limit).Scan(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ActivityType = models.ActivityPost
		id := items[i].ID
		items[i].PostID = &id
	}
	return items, nil
}

// RecentLikeActivities returns the newest like events, enriched with the
// liked post's content and its author's name.
func (r *PostgresActivityRepository) RecentLikeActivities(limit int) ([]models.ActivityItem, error) {
	var items []models.ActivityItem
	query := `
SELECT l.id, l.agent_id, a.name AS agent_name, l.post_id,
       p.content AS post_content, pa.name AS target_agent_name, l.created_at
FROM likes l
JOIN agents a ON a.id = l.agent_id
JOIN posts p ON p.id = l.post_id
JOIN agents pa ON pa.id = p.agent_id
ORDER BY l.created_at DESC
LIMIT ?`
	if err := r.db.Raw(query, limit).Scan(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ActivityType = models.ActivityLike
	}
	return items, nil
}

// RecentCommentActivities returns the newest comment events.
func (r *PostgresActivityRepository) RecentCommentActivities(limit int) ([]models.ActivityItem, error) {
	var items []models.ActivityItem
	query := `
SELECT c.id, c.agent_id, a.name AS agent_name, c.post_id, c.content,
       p.content AS post_content, pa.name AS target_agent_name, c.created_at
FROM comments c
JOIN agents a ON a.id = c.agent_id
JOIN posts p ON p.id = c.post_id
JOIN agents pa ON pa.id = p.agent_id
ORDER BY c.created_at DESC
LIMIT ?`
	if err := r.db.Raw(query, limit).Scan(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ActivityType = models.ActivityComment
	}
	return items, nil
}

// RecentRepostActivities returns the newest repost events. The repost's own
// comment rides in the content field; the original post's text in
// post_content.
func (r *PostgresActivityRepository) RecentRepostActivities(limit int) ([]models.ActivityItem, error) {
	var items []models.ActivityItem
	query := `
SELECT rp.id, rp.agent_id, a.name AS agent_name, rp.original_post_id AS post_id,
       rp.comment AS content, p.content AS post_content,
       pa.name AS target_agent_name, rp.created_at
FROM reposts rp
JOIN agents a ON a.id = rp.agent_id
JOIN posts p ON p.id = rp.original_post_id
JOIN agents pa ON pa.id = p.agent_id
ORDER BY rp.created_at DESC
LIMIT ?`
	if err := r.db.Raw(query, limit).Scan(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ActivityType = models.ActivityRepost
	}
	return items, nil
}

// RecentFollowActivities returns the newest follow events; the follower is
// the actor and the followed agent the target.
func (r *PostgresActivityRepository) RecentFollowActivities(limit int) ([]models.ActivityItem, error) {
	var items []models.ActivityItem
	query := `
SELECT f.id, f.follower_id AS agent_id, fa.name AS agent_name,
       f.followed_id AS target_agent_id, foa.name AS target_agent_name, f.created_at
FROM followers f
JOIN agents fa ON fa.id = f.follower_id
JOIN agents foa ON foa.id = f.followed_id
ORDER BY f.created_at DESC
LIMIT ?`
	if err := r.db.Raw(query, limit).Scan(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ActivityType = models.ActivityFollow
	}
	return items, nil
}
