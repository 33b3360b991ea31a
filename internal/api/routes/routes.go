package routes

import (
	"fmt"
	"net/http"

	"calling-tracker-backend/internal/api/handlers"
	"calling-tracker-backend/internal/api/middleware"
	"calling-tracker-backend/internal/auth"
	"calling-tracker-backend/internal/config"
	"calling-tracker-backend/internal/logger"
	"calling-tracker-backend/internal/metrics"
	"calling-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies carries the long-lived collaborators the router is built around.
// Nil services are constructed from the database.
type Dependencies struct {
	Metrics        *metrics.Metrics
	CallingChanges service.CallingChangeServiceInterface
	Sync           service.SyncServiceInterface
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	if deps.CallingChanges == nil {
		var opts []service.Option
		if deps.Metrics != nil {
			opts = append(opts, service.WithRecorder(deps.Metrics))
		}
		deps.CallingChanges = service.NewCallingChangeService(db, service.NewValidator(), opts...)
	}
	if deps.Sync == nil {
		deps.Sync = service.NewSyncService("", 0, nil)
	}

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	healthHandler := handlers.NewHealthHandler(db)
	callingChangeHandler := handlers.NewCallingChangeHandler(deps.CallingChanges)
	syncHandler := handlers.NewSyncHandler(deps.Sync)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		changes := v1.Group("/calling-changes")
		{
			changes.GET("", callingChangeHandler.ListCallingChanges)
			changes.POST("", callingChangeHandler.CreateCallingChange)
			changes.GET("/:id", callingChangeHandler.GetCallingChange)
			changes.PUT("/:id", callingChangeHandler.UpdateCallingChange)
			changes.POST("/:id/approve", callingChangeHandler.ApproveSelection)
			changes.POST("/:id/finalize", callingChangeHandler.Finalize)

			changes.POST("/:id/considerations", callingChangeHandler.AddConsideration)
			changes.PUT("/:id/considerations/:cid", callingChangeHandler.UpdateConsideration)
			changes.DELETE("/:id/considerations/:cid", callingChangeHandler.RemoveConsideration)
			changes.PUT("/:id/considerations/:cid/select", callingChangeHandler.SelectForPrayer)

			changes.PUT("/:id/tasks/:tid", callingChangeHandler.UpdateTask)
			changes.POST("/:id/tasks/:tid/toggle", callingChangeHandler.ToggleTask)
		}

		sync := v1.Group("/sync")
		{
			sync.POST("", syncHandler.TriggerSync)
			sync.GET("/status", syncHandler.GetSyncStatus)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
