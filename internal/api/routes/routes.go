package routes

import (
	"meal-planner-backend/internal/api/handlers"
	"meal-planner-backend/internal/api/middleware"
	"meal-planner-backend/internal/cache"
	"meal-planner-backend/internal/config"
	"meal-planner-backend/internal/repository"
	"meal-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. viewCache may be nil, in which
// case read views are computed on every request.
func SetupRoutes(db *gorm.DB, cfg *config.Config, viewCache cache.Cache) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	dishRepo := repository.NewDishRepository(db)
	mealGroupRepo := repository.NewMealGroupRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Initialize services
	productService := service.NewProductService(productRepo, viewCache, validator)
	dishService := service.NewDishService(dishRepo, productRepo, mealGroupRepo, viewCache, validator)
	mealGroupService := service.NewMealGroupService(mealGroupRepo, viewCache, validator)
	viewService := service.NewViewService(dishRepo, productRepo, mealGroupRepo, statsRepo, viewCache)
	exportService := service.NewExportService(dishRepo, productRepo, mealGroupRepo)

	// Initialize handlers
	var pinger handlers.Pinger
	if p, ok := viewCache.(handlers.Pinger); ok {
		pinger = p
	}
	healthHandler := handlers.NewHealthHandler(db, pinger)
	productHandler := handlers.NewProductHandler(productService)
	dishHandler := handlers.NewDishHandler(dishService)
	mealGroupHandler := handlers.NewMealGroupHandler(mealGroupService)
	viewHandler := handlers.NewViewHandler(viewService, exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/update", productHandler.UpdateProduct)
			products.POST("/:id/delete", productHandler.DeleteProduct)
		}

		// Dish routes
		dishes := v1.Group("/dishes")
		{
			dishes.GET("", dishHandler.ListDishes)
			dishes.POST("", dishHandler.CreateDish)
			dishes.GET("/highlighted", viewHandler.HighlightedDishes)
			dishes.GET("/ungrouped", viewHandler.UngroupedDishes)
			dishes.GET("/:id", dishHandler.GetDish)
			dishes.PUT("/:id", dishHandler.UpdateDish)
			dishes.DELETE("/:id", dishHandler.DeleteDish)
			dishes.POST("/:id/update", dishHandler.UpdateDish)
			dishes.POST("/:id/delete", dishHandler.DeleteDish)
		}

		// Meal group routes
		mealGroups := v1.Group("/meal-groups")
		{
			mealGroups.GET("", mealGroupHandler.ListMealGroups)
			mealGroups.POST("", mealGroupHandler.CreateMealGroup)
			mealGroups.GET("/:id", mealGroupHandler.GetMealGroup)
			mealGroups.PUT("/:id", mealGroupHandler.UpdateMealGroup)
			mealGroups.DELETE("/:id", mealGroupHandler.DeleteMealGroup)
			mealGroups.POST("/:id/update", mealGroupHandler.UpdateMealGroup)
			mealGroups.POST("/:id/delete", mealGroupHandler.DeleteMealGroup)
		}

		// Page views
		v1.GET("/overview", viewHandler.Overview)
		v1.GET("/menu", viewHandler.Menu)
		v1.GET("/menu/groups/:id", viewHandler.GroupDetail)

		// Statistics
		stats := v1.Group("/stats")
		{
			stats.GET("/ingredients", viewHandler.IngredientFrequency)
			stats.GET("/totals", viewHandler.Totals)
		}

		v1.GET("/export/catalog.xlsx", viewHandler.ExportCatalog)
	}

	return router
}
