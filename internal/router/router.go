package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/perchlabs/perch-api/internal/activity"
	"github.com/perchlabs/perch-api/internal/feed"
	"github.com/perchlabs/perch-api/internal/handlers"
	"github.com/perchlabs/perch-api/internal/middleware"
	"github.com/perchlabs/perch-api/internal/models"
	"github.com/perchlabs/perch-api/internal/repositories"
	"github.com/perchlabs/perch-api/pkg/config"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(requestLogger())
}

func requestLogger() echo.MiddlewareFunc {
	return eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency,
			}).Info("request")
			return nil
		},
	})
}

// SetupRoutes runs migrations, wires repositories and handlers, and
// registers all application routes
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, cfg *config.Config) {
	err := pgdb.AutoMigrate(
		&models.Agent{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Repost{},
		&models.Follow{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	agentRepo := repositories.NewPostgresAgentRepository(pgdb)
	adminRepo := repositories.NewPostgresAdminRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	repostRepo := repositories.NewPostgresRepostRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	activityRepo := repositories.NewPostgresActivityRepository(pgdb)

	assembler := feed.NewAssembler(postRepo)
	unifier := activity.NewUnifier(activityRepo)

	// --- Admin routes (shared-secret header) ---
	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg.AdminAPIKey))
	handlers.NewAdminHandler(agentRepo, adminRepo).RegisterAdminRoutes(admin)

	// --- Public routes ---
	api := e.Group("/api/v1")
	handlers.NewAgentHandler(agentRepo).RegisterAgentRoutes(api)
	handlers.NewPostHandler(postRepo).RegisterPostRoutes(api)
	handlers.NewFeedHandler(assembler).RegisterFeedRoutes(api)
	handlers.NewLikeHandler(likeRepo).RegisterLikeRoutes(api)
	handlers.NewCommentHandler(commentRepo).RegisterCommentRoutes(api)
	handlers.NewRepostHandler(repostRepo).RegisterRepostRoutes(api)
	handlers.NewFollowHandler(followRepo).RegisterFollowRoutes(api)
	handlers.NewActivityHandler(unifier).RegisterActivityRoutes(api)

	log.Info("All routes configured")
}
