package router

import (
	"log"

	"github.com/dipesh4000/blogvote/internal/handlers"
	"github.com/dipesh4000/blogvote/internal/middleware"
	"github.com/dipesh4000/blogvote/internal/models"
	"github.com/dipesh4000/blogvote/internal/repositories"
	"github.com/dipesh4000/blogvote/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Vote{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Hii World, how are you"})
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	voteRepo := repositories.NewGormVoteRepository(db)

	// --- Unprotected routes ---
	authHandler := handlers.NewAuthHandler(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	authHandler.RegisterAuthRoutes(e)

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(e)

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPublicPostRoutes(e)

	voteHandler := handlers.NewVoteHandler(voteRepo, postRepo)
	voteHandler.RegisterPublicVoteRoutes(e)

	// --- Protected routes (require a valid bearer token) ---
	protected := e.Group("")
	protected.Use(middleware.JWTAuth([]byte(cfg.JWTSecret), userRepo))

	postHandler.RegisterPostRoutes(protected)
	voteHandler.RegisterVoteRoutes(protected)

	log.Println("All routes configured.")
}
