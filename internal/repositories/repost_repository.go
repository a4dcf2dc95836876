package repositories

import (
	"github.com/perchlabs/perch-api/internal/models"
	"gorm.io/gorm"
)

// RepostRepository defines the interface for repost data operations
type RepostRepository interface {
	CreateRepost(repost *models.Repost) error
}

// PostgresRepostRepository implements RepostRepository for PostgreSQL
type PostgresRepostRepository struct {
	db *gorm.DB
}

// NewPostgresRepostRepository creates a new PostgresRepostRepository
func NewPostgresRepostRepository(db *gorm.DB) *PostgresRepostRepository {
	return &PostgresRepostRepository{db: db}
}

// CreateRepost inserts a new repost
func (r *PostgresRepostRepository) CreateRepost(repost *models.Repost) error {
	return r.db.Create(repost).Error
}
