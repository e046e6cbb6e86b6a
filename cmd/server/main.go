package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kunstnord/gallery-api/internal/config"
	"github.com/kunstnord/gallery-api/internal/database"
	"github.com/kunstnord/gallery-api/internal/handler"
	"github.com/kunstnord/gallery-api/internal/mailer"
	"github.com/kunstnord/gallery-api/internal/middleware"
	"github.com/kunstnord/gallery-api/internal/recaptcha"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/storage"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Blob store
	blobs, err := storage.NewMinioStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// Outbound collaborators
	smtpMailer := mailer.NewSMTPMailer(cfg)
	botVerifier := recaptcha.NewClient(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	tokenRepo := repository.NewTokenRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	newsRepo := repository.NewNewsRepository(database.DB)
	exhibitionRepo := repository.NewExhibitionRepository(database.DB)
	contactRepo := repository.NewContactRepository(database.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo, blobs, cfg.PlaceholderImageKey)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	newsService := service.NewNewsService(newsRepo, blobs, cfg.PlaceholderImageKey)
	exhibitionService := service.NewExhibitionService(exhibitionRepo, blobs, cfg.PlaceholderImageKey)
	contactService := service.NewContactService(
		contactRepo, botVerifier, smtpMailer,
		cfg.RecaptchaMinScore, cfg.PublicBaseURL, cfg.ContactNotifyEmail,
	)

	// Initialize handlers
	prod := cfg.IsProduction()
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, prod)
	productHandler := handler.NewProductHandler(productService, blobs, prod)
	categoryHandler := handler.NewCategoryHandler(categoryService, blobs, prod)
	newsHandler := handler.NewNewsHandler(newsService, blobs, prod)
	exhibitionHandler := handler.NewExhibitionHandler(exhibitionService, blobs, prod)
	contactHandler := handler.NewContactHandler(contactService)

	// Setup Gin router
	if prod {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(prod))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	api := router.Group("/api/v1")
	authRequired := middleware.AuthMiddleware(authService)

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/logout", authRequired, authHandler.Logout)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)
	api.GET("/news", newsHandler.List)
	api.GET("/news/:id", newsHandler.Get)
	api.GET("/exhibitions", exhibitionHandler.List)
	api.GET("/exhibitions/:id", exhibitionHandler.Get)

	api.POST("/contact", contactHandler.Submit)
	api.POST("/contact/verify", contactHandler.Verify)

	// Protected routes (require bearer token)
	protected := api.Group("")
	protected.Use(authRequired)
	{
		protected.POST("/products", productHandler.Create)
		protected.PUT("/products/:id", productHandler.Update)
		protected.DELETE("/products/:id", productHandler.Delete)

		protected.POST("/categories", categoryHandler.Create)
		protected.PUT("/categories/:id", categoryHandler.Update)
		protected.DELETE("/categories/:id", categoryHandler.Delete)

		protected.POST("/news", newsHandler.Create)
		protected.PUT("/news/:id", newsHandler.Update)
		protected.DELETE("/news/:id", newsHandler.Delete)

		protected.POST("/exhibitions", exhibitionHandler.Create)
		protected.PUT("/exhibitions/:id", exhibitionHandler.Update)
		protected.DELETE("/exhibitions/:id", exhibitionHandler.Delete)

		protected.GET("/users", userHandler.List)
		protected.GET("/users/:id", userHandler.Get)
		protected.POST("/users", userHandler.Create)
		protected.PUT("/users/:id", userHandler.Update)
		protected.DELETE("/users/:id", userHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
