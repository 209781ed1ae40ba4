package main

import (
	"log"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"water_store/internal/auth"
	"water_store/internal/config"
	"water_store/internal/database"
	"water_store/internal/handlers"
	"water_store/internal/migrations"
	"water_store/internal/models"
	"water_store/internal/redis"
	"water_store/internal/repository"
	"water_store/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations and seed default data
	if err := migrations.RunMigrations(db, cfg.JWTSecret); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis. The cache is optional: without it every AJAX lookup
	// hits the database directly.
	var cache services.Cache
	if redisClient, err := redis.Initialize(cfg.RedisURL); err != nil {
		log.Printf("Warning: Redis unavailable, caching disabled: %v", err)
	} else {
		cache = redisClient
	}
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Initialize repositories
	stateRepo := repository.NewStateRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(categoryRepo, productRepo, stateRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, branchRepo, cache)
	contactService := services.NewContactService(contactRepo)
	lookupService := services.NewLookupService(branchRepo, productRepo, cache, cacheTTL)
	authService := services.NewAuthService(adminRepo, cfg.JWTSecret)
	adminService := services.NewAdminService(stateRepo, branchRepo, categoryRepo, productRepo, cache)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(catalogService, orderService, contactService)
	ajaxHandler := handlers.NewAjaxHandler(lookupService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService, orderService, contactService)

	// Setup routes
	router := gin.Default()

	renderer, err := handlers.LoadTemplates(cfg.TemplatesDir)
	if err != nil {
		log.Fatal("Failed to load templates:", err)
	}
	router.HTMLRender = renderer

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	router.Use(sessions.Sessions("water_store_session", store))

	router.Static("/static", "./static")

	// Storefront pages
	router.GET("/", pageHandler.Home)
	router.GET("/services/", pageHandler.Services)
	router.GET("/category/:slug/", pageHandler.CategoryDetail)
	router.GET("/product/:slug/", pageHandler.ProductDetail)
	router.GET("/contact/", pageHandler.ContactPage)
	router.POST("/contact/submit/", pageHandler.ContactSubmit)
	router.POST("/order/create/", pageHandler.CreateOrder)

	// AJAX lookups behind the order form
	router.GET("/ajax/branches/", ajaxHandler.BranchesByState)
	router.GET("/ajax/product-info/", ajaxHandler.ProductInfo)

	// Back-office API
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register-super-admin", authHandler.RegisterSuperAdmin)
		api.GET("/auth/me", auth.JWTMiddleware(cfg.JWTSecret), authHandler.Me)

		adminGroup := api.Group("/admin")
		adminGroup.Use(auth.JWTMiddleware(cfg.JWTSecret))
		adminHandler.Registry().RegisterRoutes(adminGroup, auth.RequireRole(string(models.RoleSuperAdmin)))
	}

	router.NoRoute(pageHandler.NotFound)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
