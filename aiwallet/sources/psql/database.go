package psql

import (
	"aiwallet/aiwallet/config"
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/logging"
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)

	logging.AppLogger.Info("connecting to database",
		zap.String("host", cfg.DBHost), zap.String("port", cfg.DBPort), zap.String("db", cfg.DBName))

	return Open(ctx, postgres.Open(connStr))
}

// Open connects through any gorm dialector and migrates the schema. Tests
// pass an in-memory SQLite dialector here.
func Open(ctx context.Context, dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate models (automatic schema creation)
	err = db.WithContext(ctx).
		AutoMigrate(
			&models.User{},
			&models.Wallet{},
			&models.Transaction{},
			&models.Chat{},
			&models.Message{},
		)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	return &Database{DB: db}, nil
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
