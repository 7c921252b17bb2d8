package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blogvote-api/internal/handlers"
	"blogvote-api/internal/middleware"
	"blogvote-api/internal/models"
	"blogvote-api/internal/repositories"
	"blogvote-api/pkg/security"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes migrates the schema, wires repositories into handlers
// and registers all application routes
func SetupRoutes(e *echo.Echo, db *gorm.DB, tokens *security.TokenService) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Vote{},
	)
	if err != nil {
		return err
	}
	zap.L().Info("Schema migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	voteRepo := repositories.NewPostgresVoteRepository(db)

	// --- Unprotected routes ---
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(e.Group("/users"))

	authHandler := handlers.NewAuthHandler(userRepo, tokens)
	authHandler.RegisterAuthRoutes(e.Group("/auth"))

	// --- Protected routes (require JWT authentication) ---
	authRequired := middleware.JWTAuth(tokens, userRepo)

	postGroup := e.Group("/posts", authRequired)
	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(postGroup)

	voteGroup := e.Group("/vote", authRequired)
	voteHandler := handlers.NewVoteHandler(voteRepo)
	voteHandler.RegisterVoteRoutes(voteGroup)

	zap.L().Info("All routes configured")
	return nil
}
