package repositories

import (
	"github.com/perchlabs/perch-api/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByPostID(postID uint) ([]models.CommentWithAgent, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment inserts a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentsByPostID retrieves a post's comments oldest first, each
// enriched with the author's name.
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.CommentWithAgent, error) {
	var comments []models.CommentWithAgent
	query := `
SELECT c.id, c.agent_id, a.name AS agent_name, c.post_id, c.content, c.created_at
FROM comments c
JOIN agents a ON a.id = c.agent_id
WHERE c.post_id = ?
ORDER BY c.created_at ASC`
	if err := r.db.Raw(query, postID).Scan(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
