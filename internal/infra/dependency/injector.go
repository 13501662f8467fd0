// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Somebud0180/rInventory-sub001/config"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/category"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/cloudsync"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/device"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/item"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/location"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/maintenance"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/settings"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/summary"
	"github.com/Somebud0180/rInventory-sub001/internal/infra/server/router"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/adapters"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/cloudstore"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/controller"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/middleware"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Engine *cloudsync.Engine
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	itemRepo := persistence.NewItemRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	locationRepo := persistence.NewLocationRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	passphraseService := adapters.NewPassphraseService()
	tokenService := adapters.NewDeviceTokenService(cfg.Device.TokenSecret, cfg.Device.TokenExpiry)
	recordStore := cloudstore.NewRecordStore(redisClient, cfg.Cloud.Container)

	// Create the sync engine
	engine := cloudsync.NewEngine(
		cloudsync.LocalStore{
			Items:      itemRepo,
			Categories: categoryRepo,
			Locations:  locationRepo,
		},
		recordStore,
		settingsRepo,
		tokenService,
		cloudsync.EngineConfig{
			Container:    cfg.Cloud.Container,
			TickInterval: cfg.Sync.Interval,
		},
	)

	// Create item use cases
	listItemsUseCase := item.NewListItemsUseCase(itemRepo, categoryRepo, locationRepo)
	getItemUseCase := item.NewGetItemUseCase(itemRepo, categoryRepo, locationRepo)
	createItemUseCase := item.NewCreateItemUseCase(itemRepo, categoryRepo, locationRepo)
	updateItemUseCase := item.NewUpdateItemUseCase(itemRepo, categoryRepo, locationRepo)
	deleteItemUseCase := item.NewDeleteItemUseCase(itemRepo, categoryRepo, locationRepo)
	reorderItemsUseCase := item.NewReorderItemsUseCase(itemRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, itemRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	reorderCategoriesUseCase := category.NewReorderCategoriesUseCase(categoryRepo)
	suggestCategoriesUseCase := category.NewSuggestCategoriesUseCase(categoryRepo)

	// Create location use cases
	listLocationsUseCase := location.NewListLocationsUseCase(locationRepo, itemRepo)
	createLocationUseCase := location.NewCreateLocationUseCase(locationRepo)
	updateLocationUseCase := location.NewUpdateLocationUseCase(locationRepo)
	deleteLocationUseCase := location.NewDeleteLocationUseCase(locationRepo)
	reorderLocationsUseCase := location.NewReorderLocationsUseCase(locationRepo)
	suggestLocationsUseCase := location.NewSuggestLocationsUseCase(locationRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	// Create device enrollment use case
	enrollDeviceUseCase := device.NewEnrollDeviceUseCase(
		cfg.Device.PassphraseHash,
		passphraseService,
		tokenService,
		settingsRepo,
	)

	// Create summary and maintenance use cases
	getSummaryUseCase := summary.NewGetSummaryUseCase(itemRepo, categoryRepo, locationRepo)
	cleanupCatalogUseCase := maintenance.NewCleanupCatalogUseCase(itemRepo, categoryRepo, locationRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return recordStore.Ping(ctx) == nil
		},
	)

	deviceController := controller.NewDeviceController(enrollDeviceUseCase)

	itemController := controller.NewItemController(
		listItemsUseCase,
		getItemUseCase,
		createItemUseCase,
		updateItemUseCase,
		deleteItemUseCase,
		reorderItemsUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		reorderCategoriesUseCase,
		suggestCategoriesUseCase,
	)

	locationController := controller.NewLocationController(
		listLocationsUseCase,
		createLocationUseCase,
		updateLocationUseCase,
		deleteLocationUseCase,
		reorderLocationsUseCase,
		suggestLocationsUseCase,
	)

	syncController := controller.NewSyncController(engine)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	summaryController := controller.NewSummaryController(getSummaryUseCase)
	maintenanceController := controller.NewMaintenanceController(cleanupCatalogUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var enrollRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		enrollRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		enrollRateLimiter = middleware.NewRateLimiter()
	}
	deviceAuthMiddleware := middleware.NewDeviceAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		deviceController,
		itemController,
		categoryController,
		locationController,
		syncController,
		settingsController,
		summaryController,
		maintenanceController,
		enrollRateLimiter,
		deviceAuthMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Engine: engine,
		Router: r,
	}
}
