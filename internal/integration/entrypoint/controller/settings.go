// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/settings"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// SettingsController handles settings endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := settings.UpdateSettingsInput{
		AutoSyncEnabled: req.AutoSyncEnabled,
	}
	if req.SyncIntervalSeconds != nil {
		interval := time.Duration(*req.SyncIntervalSeconds) * time.Second
		input.SyncInterval = &interval
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// handleSettingsError handles settings errors and returns appropriate HTTP
// responses. Interval validation surfaces as a sync error.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var syncErr *domainerror.SyncError
	if errors.As(err, &syncErr) {
		status := http.StatusInternalServerError
		if syncErr.Code == domainerror.ErrCodeInvalidInterval {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: syncErr.Message,
			Code:  string(syncErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
