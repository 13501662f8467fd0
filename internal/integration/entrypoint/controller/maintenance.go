// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/maintenance"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// MaintenanceController handles catalog maintenance endpoints.
type MaintenanceController struct {
	cleanupUseCase *maintenance.CleanupCatalogUseCase
}

// NewMaintenanceController creates a new maintenance controller instance.
func NewMaintenanceController(cleanupUseCase *maintenance.CleanupCatalogUseCase) *MaintenanceController {
	return &MaintenanceController{cleanupUseCase: cleanupUseCase}
}

// Cleanup handles POST /maintenance/cleanup requests. It sweeps dangling
// references, ghost items, and orphaned categories and locations.
func (c *MaintenanceController) Cleanup(ctx *gin.Context) {
	output, err := c.cleanupUseCase.Execute(ctx.Request.Context(), maintenance.CleanupCatalogInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Catalog cleanup failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.CleanupResponse{
		ClearedReferences: output.ClearedReferences,
		RemovedGhostItems: output.RemovedGhostItems,
		RemovedCategories: output.RemovedCategories,
		RemovedLocations:  output.RemovedLocations,
	})
}
