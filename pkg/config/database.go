package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MaxOpenConns is the fixed size of the PostgreSQL connection pool. Callers
// beyond this limit queue on the pool, not in application code.
const MaxOpenConns = 5

// DB holds the database connection
type DB struct {
	Postgres *gorm.DB
}

// InitDB opens and verifies the PostgreSQL connection pool. Failure here is
// fatal to the process by design.
func InitDB(cfg *Config) (*DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(MaxOpenConns)
	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	log.Info("Successfully connected to PostgreSQL")
	return &DB{Postgres: db}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.Postgres == nil {
		return
	}
	sqlDB, err := db.Postgres.DB()
	if err != nil {
		log.Errorf("Error getting SQL DB from GORM: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Errorf("Error closing PostgreSQL connection: %v", err)
		return
	}
	log.Info("PostgreSQL connection closed")
}
