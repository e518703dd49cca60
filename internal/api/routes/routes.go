package routes

import (
	"product-relations-backend/internal/api/handlers"
	"product-relations-backend/internal/api/middleware"
	"product-relations-backend/internal/auth"
	"product-relations-backend/internal/config"
	"product-relations-backend/internal/repository"
	"product-relations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	relationRepo := repository.NewRelationRepository(db)
	relationGroupRepo := repository.NewRelationGroupRepository(db)
	productRepo := repository.NewProductRepository(db)
	priceHistoryRepo := repository.NewPriceHistoryRepository(db)

	// Initialize services
	productGroupService := service.NewProductGroupService(relationRepo, relationGroupRepo, productRepo, priceHistoryRepo, cfg.PriceHistoryDays)
	relationService := service.NewRelationService(relationRepo, validator)
	relationGroupService := service.NewRelationGroupService(relationGroupRepo, relationRepo, validator)
	priceHistoryService := service.NewPriceHistoryService(priceHistoryRepo, validator, cfg.PriceHistoryDays)
	productService := service.NewProductService(productRepo, validator)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	productGroupHandler := handlers.NewProductGroupHandler(productGroupService)
	relationHandler := handlers.NewRelationHandler(relationService)
	relationGroupHandler := handlers.NewRelationGroupHandler(relationGroupService)
	priceHandler := handlers.NewPriceHandler(priceHistoryService)
	productHandler := handlers.NewProductHandler(productService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Storefront reads
		products := v1.Group("/products")
		{
			products.GET("/:id/groups", productGroupHandler.GetProductGroups)
			products.GET("/:id/groups/:groupId/members/:relatedId/label", productGroupHandler.GetMemberLabel)
			products.GET("/:id/groups/:groupId/members/:relatedId/swatch", productGroupHandler.GetMemberSwatch)
			products.GET("/:id/relations", relationHandler.GetRelations)
			products.GET("/:id/prices", priceHandler.GetPriceHistory)
			products.GET("/:id/prices/lowest", priceHandler.GetLowestPrice)
		}

		admin := v1.Group("", authMiddleware.RequireAdmin()...)
		{
			admin.PUT("/products/:id", productHandler.UpsertProduct)
			admin.POST("/products/:id/prices", priceHandler.RecordPrice)
			admin.PUT("/products/:id/groups/:groupId/order", relationHandler.ReorderRelations)
			admin.DELETE("/prices", priceHandler.PurgePriceHistory)

			relations := admin.Group("/relations")
			{
				relations.POST("", relationHandler.CreateRelation)
				relations.DELETE("", relationHandler.DeleteRelation)
				relations.PUT("/settings", relationHandler.SetRelationSettings)
			}

			admin.PUT("/settings/:id", relationHandler.UpdateSettings)

			relationGroups := admin.Group("/relation-groups")
			{
				relationGroups.GET("", relationGroupHandler.ListGroups)
				relationGroups.POST("", relationGroupHandler.CreateGroup)
				relationGroups.GET("/:id", relationGroupHandler.GetGroup)
				relationGroups.PUT("/:id", relationGroupHandler.UpdateGroup)
				relationGroups.DELETE("/:id", relationGroupHandler.DeleteGroup)
			}
		}
	}

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	healthHandler := handlers.NewHealthHandler(db, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	return router
}
