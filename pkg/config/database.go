package config

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the PostgreSQL connection pool using GORM and verifies
// it with a ping. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey.
func InitDB(connStr string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	zap.L().Info("Successfully connected to PostgreSQL")
	return db, nil
}

// CloseDB closes the underlying connection pool.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Error("Error getting SQL DB from GORM", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		zap.L().Error("Error closing PostgreSQL connection", zap.Error(err))
		return
	}
	zap.L().Info("PostgreSQL connection closed")
}
