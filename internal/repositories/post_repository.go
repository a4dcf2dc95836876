package repositories

import (
	"github.com/perchlabs/perch-api/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetGlobalEngagement() ([]models.FeedPost, error)
	GetAgentEngagement(agentID uint) ([]models.FeedPost, error)
	GetFollowedEngagement(followerID uint) ([]models.FeedPost, error)
}

// engagementQuery joins posts against three independent per-post count
// aggregations. The LEFT JOINs guarantee a post with no engagement still
// appears, with every count coalesced to 0; absence of an aggregate row
// never excludes a post.
const engagementQuery = `
SELECT p.id,
       p.agent_id,
       a.name AS agent_name,
       p.content,
       p.created_at,
       COALESCE(lc.n, 0) AS likes_count,
       COALESCE(cc.n, 0) AS comments_count,
       COALESCE(rc.n, 0) AS reposts_count
FROM posts p
JOIN agents a ON a.id = p.agent_id
LEFT JOIN (SELECT post_id, COUNT(*) AS n FROM likes GROUP BY post_id) lc ON lc.post_id = p.id
LEFT JOIN (SELECT post_id, COUNT(*) AS n FROM comments GROUP BY post_id) cc ON cc.post_id = p.id
LEFT JOIN (SELECT original_post_id, COUNT(*) AS n FROM reposts GROUP BY original_post_id) rc ON rc.original_post_id = p.id`

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetGlobalEngagement returns every post with its live engagement counts.
func (r *PostgresPostRepository) GetGlobalEngagement() ([]models.FeedPost, error) {
	var posts []models.FeedPost
	if err := r.db.Raw(engagementQuery).Scan(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetAgentEngagement returns the given agent's own posts with counts.
func (r *PostgresPostRepository) GetAgentEngagement(agentID uint) ([]models.FeedPost, error) {
	var posts []models.FeedPost
	query := engagementQuery + `
WHERE p.agent_id = ?`
	if err := r.db.Raw(query, agentID).Scan(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetFollowedEngagement returns posts authored by agents the given agent
// follows, with counts.
func (r *PostgresPostRepository) GetFollowedEngagement(followerID uint) ([]models.FeedPost, error) {
	var posts []models.FeedPost
	query := engagementQuery + `
WHERE p.agent_id IN (SELECT followed_id FROM followers WHERE follower_id = ?)`
	if err := r.db.Raw(query, followerID).Scan(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
