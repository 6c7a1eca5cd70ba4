package main

import (
	"fmt"

	"snapfeed/internal/model"
	"snapfeed/pkg/config"
	"snapfeed/pkg/database"
	"snapfeed/pkg/logger"

	"gorm.io/gorm"
)

// Seeds the two demo users and, when the posts table is empty, a couple of
// demo posts so the feed has something to show.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedPosts(db); err != nil {
		log.Error("Failed to seed posts: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedPosts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.PostModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var owner model.UserModel
	if err := db.Order("id ASC").First(&owner).Error; err != nil {
		return fmt.Errorf("no users to own demo posts: %w", err)
	}

	posts := []model.PostModel{
		{
			ImageURL: "https://picsum.photos/seed/mountains/800/500",
			Title:    "Mountain hike",
			Content:  "Caught the sunrise above the clouds this morning.",
			UserID:   owner.ID,
		},
		{
			ImageURL: "https://picsum.photos/seed/coffee/800/500",
			Title:    "Slow Sunday",
			Content:  "Fresh coffee and a stack of unread books.",
			UserID:   owner.ID,
		},
	}
	return db.Create(&posts).Error
}
