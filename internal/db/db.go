package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"olivier/internal/models"
)

// Open 连接 PostgreSQL，返回可在多个请求间共享的连接池句柄
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), Config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established")
	return gdb, nil
}

// Config is shared by every dialector so driver errors are translated into
// gorm's sentinel errors.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
}

// createCategoryType is idempotent; PostgreSQL has no CREATE TYPE IF NOT EXISTS.
const createCategoryType = `DO $$ BEGIN
	CREATE TYPE category AS ENUM ('ask', 'comment', 'story');
EXCEPTION
	WHEN duplicate_object THEN NULL;
END $$;`

// Migrate creates the schema. On PostgreSQL the category enum type is
// created first.
func Migrate(gdb *gorm.DB) error {
	if gdb.Dialector.Name() == "postgres" {
		if err := gdb.Exec(createCategoryType).Error; err != nil {
			return fmt.Errorf("failed to create category type: %w", err)
		}
	}

	log.Println("migration started")
	if err := gdb.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("migration done")
	return nil
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
