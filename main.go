package main

import (
	"log"
	"time"

	"cartly-be/internal/config"
	"cartly-be/internal/controllers"
	"cartly-be/internal/database"
	"cartly-be/internal/middleware"
	"cartly-be/internal/repository"
	"cartly-be/internal/service"
	"cartly-be/internal/token"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	listRepo := repository.NewListRepository(db)

	// Initialize token service
	tokenService := token.NewService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	itemService := service.NewItemService(itemRepo)
	listService := service.NewListService(listRepo, itemRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	itemController := controllers.NewItemController(itemService)
	listController := controllers.NewListController(listService)
	qrcodeController := controllers.NewQRCodeController(listService, cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Auth gate shared by every protected route
	authRequired := middleware.AuthMiddleware(tokenService, userRepo)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// User routes with stricter rate limiting
		users := api.Group("/users")
		users.Use(authRateLimiter.LimitMiddleware())
		{
			users.POST("", authController.Register)
			users.POST("/login", authController.Login)
		}

		// Item routes
		items := api.Group("/items")
		{
			items.POST("", authRequired, itemController.CreateItem)
			items.GET("", authRequired, itemController.GetItems)
			items.GET("/:id", authRequired, itemController.GetItem)
			// TODO: PUT/DELETE are not behind the auth gate while every
			// sibling route is; confirm intent before locking them down.
			items.PUT("/:id", itemController.UpdateItem)
			items.DELETE("/:id", itemController.DeleteItem)
		}

		// List routes - all require authentication
		lists := api.Group("/lists")
		lists.Use(authRequired)
		{
			lists.POST("", listController.CreateList)
			lists.GET("", listController.GetLists)
			lists.GET("/:id", listController.GetList)
			lists.PUT("/:id", listController.UpdateList)
			lists.DELETE("/:id", listController.DeleteList)
			lists.GET("/:id/qrcode", qrcodeController.GenerateQRCode)
			lists.POST("/:id/items", listController.AddItemToList)
			lists.DELETE("/:id/items/:itemId", listController.RemoveItemFromList)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
