package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/perchlabs/perch-api/internal/router"
	"github.com/perchlabs/perch-api/pkg/config"
	"github.com/perchlabs/perch-api/validators"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, assuming environment variables are set")
	}

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e)
	router.SetupRoutes(e, db.Postgres, cfg)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
