package main

import (
	"context"
	"log"
	"time"

	"meal-planner-backend/internal/api/routes"
	"meal-planner-backend/internal/cache"
	"meal-planner-backend/internal/config"
	"meal-planner-backend/internal/database"
	"meal-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "meal-planner-backend/docs" // This is needed for swag
)

//	@title			Meal Planner API
//	@version		1.0
//	@description	Backend API for the meal planner: a catalog of products, dishes and meal groups with menu, overview and statistics views.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database, seeding the catalog on first start
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Seed: cfg.SeedOnStart})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize view cache
	viewCache := setupCache(cfg)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, viewCache)

	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// setupCache connects to Redis when configured. An unreachable Redis downgrades to no caching.
func setupCache(cfg *config.Config) cache.Cache {
	if !cfg.CacheEnabled() {
		logrus.Info("REDIS_ADDR not set, view caching disabled")
		return cache.Noop{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL())
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, view caching disabled")
		return cache.Noop{}
	}

	logrus.WithField("addr", cfg.RedisAddr).Info("View cache connected")
	return redisCache
}
