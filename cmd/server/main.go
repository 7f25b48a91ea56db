package main

import (
	"log"

	"github.com/dipesh4000/blogvote/internal/router"
	"github.com/dipesh4000/blogvote/pkg/config"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Gorm, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
