package database

import (
	"fmt"

	"snapfeed/internal/model"
	"snapfeed/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the users, posts and likes tables. Safe to run on every
// startup; AutoMigrate only applies missing pieces.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.PostModel{},
		&model.LikeModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedUsers inserts the two demo users the app expects (the default post
// owner and the default viewer) when the users table is empty.
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := []model.UserModel{
		{FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		{FirstName: "Max", LastName: "Schwarz", Email: "max@example.com"},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}
