package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all settings, built once at startup and passed by
// injection. Nothing reads the environment after Load returns.
type Config struct {
	Port               string
	Env                string
	PostgresConnStr    string
	JWTSecret          string
	JWTAlgorithm       string
	TokenExpireMinutes int
}

// Load reads configuration from the environment, loading a .env file
// first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		PostgresConnStr:    os.Getenv("POSTGRES_CONN_STR"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTAlgorithm:       getEnv("JWT_ALGORITHM", "HS256"),
		TokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
	}

	if cfg.PostgresConnStr == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return n
}
