// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/cloudsync"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// SyncController handles sync engine endpoints.
type SyncController struct {
	engine *cloudsync.Engine
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(engine *cloudsync.Engine) *SyncController {
	return &SyncController{engine: engine}
}

// Sync handles POST /sync requests. It runs a full cycle: pull remote
// changes, then push local state.
func (c *SyncController) Sync(ctx *gin.Context) {
	if err := c.engine.ManualSync(ctx.Request.Context()); err != nil {
		c.handleSyncError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSyncStatusResponse(c.engine.Status()))
}

// Pull handles POST /sync/pull requests. It runs the pull phase only.
func (c *SyncController) Pull(ctx *gin.Context) {
	if err := c.engine.RefreshFromCloud(ctx.Request.Context()); err != nil {
		c.handleSyncError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSyncStatusResponse(c.engine.Status()))
}

// Push handles POST /sync/push requests. It runs the push phase only.
func (c *SyncController) Push(ctx *gin.Context) {
	if err := c.engine.SendChangesToCloud(ctx.Request.Context()); err != nil {
		c.handleSyncError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSyncStatusResponse(c.engine.Status()))
}

// Status handles GET /sync/status requests.
func (c *SyncController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToSyncStatusResponse(c.engine.Status()))
}

// RefreshAccount handles POST /sync/account/refresh requests. It re-checks
// cloud account availability and provisions the record zones when the
// account is reachable.
func (c *SyncController) RefreshAccount(ctx *gin.Context) {
	available := c.engine.RefreshAccount(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.AccountRefreshResponse{AccountAvailable: available})
}

// handleSyncError handles sync errors and returns appropriate HTTP
// responses.
func (c *SyncController) handleSyncError(ctx *gin.Context, err error) {
	var syncErr *domainerror.SyncError
	if errors.As(err, &syncErr) {
		ctx.JSON(c.getStatusCodeForSyncError(syncErr.Code), dto.ErrorResponse{
			Error: syncErr.Message,
			Code:  string(syncErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSyncError maps sync error codes to HTTP status codes.
// Availability maps to 503, a sync already in flight or disabled to 409,
// and transport failures to 502.
func (c *SyncController) getStatusCodeForSyncError(code domainerror.SyncErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeSyncDisabled:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidInterval:
		return http.StatusBadRequest
	case domainerror.ErrCodePullFailed,
		domainerror.ErrCodePushFailed,
		domainerror.ErrCodeZoneSetup:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
