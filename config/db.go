package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/models"
)

// ConnectDB opens the Postgres connection, runs migrations and tunes the
// pool. The returned handle is created once at startup and shared.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("auto migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.NewsCategory{},
		&models.PodcastCategory{},
		&models.Personality{},
		&models.News{},
		&models.Podcast{},
		&models.Program{},
		&models.Event{},
		&models.Gallery{},
		&models.GalleryImage{},
		&models.MusicTrack{},
		&models.RadioStation{},
		&models.ListenEvent{},
	)
}
