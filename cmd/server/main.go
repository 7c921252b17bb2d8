package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"blogvote-api/internal/router"
	"blogvote-api/pkg/config"
	"blogvote-api/pkg/security"
	"blogvote-api/validators"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(db)

	// Token service with secret, algorithm and lifetime from config
	tokens, err := security.NewTokenService(
		cfg.JWTSecret,
		cfg.JWTAlgorithm,
		time.Duration(cfg.TokenExpireMinutes)*time.Minute,
	)
	if err != nil {
		zap.L().Fatal("Failed to initialize token service", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, tokens); err != nil {
		zap.L().Fatal("Failed to setup routes", zap.Error(err))
	}

	// Start server
	zap.L().Info("Server starting", zap.String("port", cfg.Port))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
