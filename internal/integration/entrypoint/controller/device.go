// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/device"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// DeviceController handles device enrollment endpoints.
type DeviceController struct {
	enrollUseCase *device.EnrollDeviceUseCase
}

// NewDeviceController creates a new device controller instance.
func NewDeviceController(enrollUseCase *device.EnrollDeviceUseCase) *DeviceController {
	return &DeviceController{enrollUseCase: enrollUseCase}
}

// Enroll handles POST /devices/enroll requests. It exchanges the container
// passphrase for a device token.
func (c *DeviceController) Enroll(ctx *gin.Context) {
	var req dto.EnrollDeviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := device.EnrollDeviceInput{
		Passphrase: req.Passphrase,
		DeviceName: req.DeviceName,
	}

	output, err := c.enrollUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDeviceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EnrollDeviceResponse{
		DeviceID:    output.DeviceID,
		DeviceName:  output.DeviceName,
		DeviceToken: output.DeviceToken,
		ExpiresAt:   output.ExpiresAt,
	})
}

// handleDeviceError handles device enrollment errors and returns
// appropriate HTTP responses.
func (c *DeviceController) handleDeviceError(ctx *gin.Context, err error) {
	var devErr *domainerror.DeviceError
	if errors.As(err, &devErr) {
		ctx.JSON(c.getStatusCodeForDeviceError(devErr.Code), dto.ErrorResponse{
			Error: devErr.Message,
			Code:  string(devErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDeviceError maps device error codes to HTTP status codes.
// A wrong passphrase or bad token is 401, enrollment without a configured
// passphrase is 503, and a missing device name is 400.
func (c *DeviceController) getStatusCodeForDeviceError(code domainerror.DeviceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPassphrase,
		domainerror.ErrCodeInvalidDeviceToken,
		domainerror.ErrCodeMissingDeviceToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeEnrollmentDisabled:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeMissingDeviceName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
