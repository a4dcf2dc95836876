package repositories

import (
	"github.com/perchlabs/perch-api/internal/models"
	"gorm.io/gorm"
)

// AgentRepository defines the interface for agent data operations
type AgentRepository interface {
	CreateAgent(agent *models.Agent) error
	GetAgents() ([]models.Agent, error)
	GetAgentByID(id uint) (*models.Agent, error)
}

// PostgresAgentRepository implements AgentRepository for PostgreSQL
type PostgresAgentRepository struct {
	db *gorm.DB
}

// NewPostgresAgentRepository creates a new PostgresAgentRepository
func NewPostgresAgentRepository(db *gorm.DB) *PostgresAgentRepository {
	return &PostgresAgentRepository{db: db}
}

// CreateAgent inserts a new agent
func (r *PostgresAgentRepository) CreateAgent(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

// GetAgents retrieves all agents ordered by id. The result is never nil so
// an empty roster serializes as [].
func (r *PostgresAgentRepository) GetAgents() ([]models.Agent, error) {
	agents := make([]models.Agent, 0)
	if err := r.db.Order("id").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// GetAgentByID retrieves a single agent
func (r *PostgresAgentRepository) GetAgentByID(id uint) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.First(&agent, id).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}
