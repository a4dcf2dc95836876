package repositories

import (
	"github.com/perchlabs/perch-api/internal/models"
	"gorm.io/gorm"
)

// AdminRepository defines destructive maintenance operations
type AdminRepository interface {
	ResetTransactionalTables() error
}

// PostgresAdminRepository implements AdminRepository for PostgreSQL
type PostgresAdminRepository struct {
	db *gorm.DB
}

// NewPostgresAdminRepository creates a new PostgresAdminRepository
func NewPostgresAdminRepository(db *gorm.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

// ResetTransactionalTables irreversibly wipes likes, comments, reposts,
// followers and posts. Agents survive a reset. The wipe runs in a single
// transaction so a failure leaves the tables untouched.
func (r *PostgresAdminRepository) ResetTransactionalTables() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{
			&models.Like{},
			&models.Comment{},
			&models.Repost{},
			&models.Follow{},
			&models.Post{},
		} {
			if err := wipe.Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
