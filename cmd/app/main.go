package main

import (
	"snapfeed/internal/app"
	"snapfeed/pkg/config"

	_ "snapfeed/docs" // Swagger docs
)

// @title           Snapfeed API
// @version         1.0
// @description     Minimal blog feed: create posts with an image, list the feed, toggle likes.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
