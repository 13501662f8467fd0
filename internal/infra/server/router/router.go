// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/controller"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	deviceController      *controller.DeviceController
	itemController        *controller.ItemController
	categoryController    *controller.CategoryController
	locationController    *controller.LocationController
	syncController        *controller.SyncController
	settingsController    *controller.SettingsController
	summaryController     *controller.SummaryController
	maintenanceController *controller.MaintenanceController
	enrollRateLimiter     *middleware.RateLimiter
	deviceAuthMiddleware  *middleware.DeviceAuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	deviceController *controller.DeviceController,
	itemController *controller.ItemController,
	categoryController *controller.CategoryController,
	locationController *controller.LocationController,
	syncController *controller.SyncController,
	settingsController *controller.SettingsController,
	summaryController *controller.SummaryController,
	maintenanceController *controller.MaintenanceController,
	enrollRateLimiter *middleware.RateLimiter,
	deviceAuthMiddleware *middleware.DeviceAuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		deviceController:      deviceController,
		itemController:        itemController,
		categoryController:    categoryController,
		locationController:    locationController,
		syncController:        syncController,
		settingsController:    settingsController,
		summaryController:     summaryController,
		maintenanceController: maintenanceController,
		enrollRateLimiter:     enrollRateLimiter,
		deviceAuthMiddleware:  deviceAuthMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route except device
// enrollment requires a device token.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Device enrollment (only setup if device controller is available)
		if r.deviceController != nil && r.enrollRateLimiter != nil {
			devices := v1.Group("/devices")
			{
				devices.POST("/enroll", r.enrollRateLimiter.Middleware(), r.deviceController.Enroll)
			}
		}

		// Item routes (require device authentication)
		if r.itemController != nil && r.deviceAuthMiddleware != nil {
			items := v1.Group("/items")
			items.Use(r.deviceAuthMiddleware.Authenticate())
			{
				items.GET("", r.itemController.List)
				items.POST("", r.itemController.Create)
				items.GET("/:id", r.itemController.Get)
				items.PATCH("/:id", r.itemController.Update)
				items.DELETE("/:id", r.itemController.Delete)
				items.PUT("/order", r.itemController.Reorder)
			}
		}

		// Category routes (require device authentication)
		if r.categoryController != nil && r.deviceAuthMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.deviceAuthMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
				categories.PUT("/order", r.categoryController.Reorder)
				categories.GET("/suggestions", r.categoryController.Suggest)
			}
		}

		// Location routes (require device authentication)
		if r.locationController != nil && r.deviceAuthMiddleware != nil {
			locations := v1.Group("/locations")
			locations.Use(r.deviceAuthMiddleware.Authenticate())
			{
				locations.GET("", r.locationController.List)
				locations.POST("", r.locationController.Create)
				locations.PATCH("/:id", r.locationController.Update)
				locations.DELETE("/:id", r.locationController.Delete)
				locations.PUT("/order", r.locationController.Reorder)
				locations.GET("/suggestions", r.locationController.Suggest)
			}
		}

		// Sync routes (require device authentication)
		if r.syncController != nil && r.deviceAuthMiddleware != nil {
			sync := v1.Group("/sync")
			sync.Use(r.deviceAuthMiddleware.Authenticate())
			{
				sync.POST("", r.syncController.Sync)
				sync.POST("/pull", r.syncController.Pull)
				sync.POST("/push", r.syncController.Push)
				sync.GET("/status", r.syncController.Status)
				sync.POST("/account/refresh", r.syncController.RefreshAccount)
			}
		}

		// Settings routes (require device authentication)
		if r.settingsController != nil && r.deviceAuthMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.deviceAuthMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PATCH("", r.settingsController.Update)
			}
		}

		// Summary routes (require device authentication)
		if r.summaryController != nil && r.deviceAuthMiddleware != nil {
			summary := v1.Group("/summary")
			summary.Use(r.deviceAuthMiddleware.Authenticate())
			{
				summary.GET("", r.summaryController.Get)
			}
		}

		// Maintenance routes (require device authentication)
		if r.maintenanceController != nil && r.deviceAuthMiddleware != nil {
			maintenance := v1.Group("/maintenance")
			maintenance.Use(r.deviceAuthMiddleware.Authenticate())
			{
				maintenance.POST("/cleanup", r.maintenanceController.Cleanup)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
