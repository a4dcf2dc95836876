package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// DefaultAdminKey is the historical fallback used when ADMIN_API_KEY is
// unset. Deployments relying on it get a loud warning at startup.
const DefaultAdminKey = "default_admin_key"

// Config carries all process configuration. It is built once in main and
// injected into middleware and handlers; business logic never reads the
// environment directly.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	AdminAPIKey string
}

// Load reads configuration from the environment.
func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}
	if cfg.AdminAPIKey == "" {
		cfg.AdminAPIKey = DefaultAdminKey
		log.Warn("ADMIN_API_KEY is not set; admin endpoints are guarded by the insecure built-in default key")
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
