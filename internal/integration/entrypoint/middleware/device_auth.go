// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// DeviceIDKey is the context key for the authenticated device's ID.
	DeviceIDKey ContextKey = "device_id"
	// DeviceNameKey is the context key for the authenticated device's name.
	DeviceNameKey ContextKey = "device_name"
)

// DeviceAuthMiddleware provides device token authentication middleware.
type DeviceAuthMiddleware struct {
	tokenService adapter.DeviceTokenService
}

// NewDeviceAuthMiddleware creates a new device auth middleware instance.
func NewDeviceAuthMiddleware(tokenService adapter.DeviceTokenService) *DeviceAuthMiddleware {
	return &DeviceAuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces device token
// authentication.
func (m *DeviceAuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingDeviceToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidDeviceToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Device token is required",
				Code:  string(domainerror.ErrCodeMissingDeviceToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateDeviceToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired device token",
				Code:  string(domainerror.ErrCodeInvalidDeviceToken),
			})
			c.Abort()
			return
		}

		c.Set(string(DeviceIDKey), claims.DeviceID)
		c.Set(string(DeviceNameKey), claims.DeviceName)

		c.Next()
	}
}
