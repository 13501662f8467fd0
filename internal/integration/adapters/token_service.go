// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

const (
	// defaultTokenLifetime is applied when no lifetime is configured.
	defaultTokenLifetime = 90 * 24 * time.Hour

	tokenIssuer = "rinventory"
)

// DeviceClaims represents the custom claims carried by device tokens.
type DeviceClaims struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name"`
	jwt.RegisteredClaims
}

// deviceTokenService implements the adapter.DeviceTokenService interface.
// Tokens are stateless: validation needs only the signing secret, so an
// enrolled device can be authenticated without a round-trip to storage.
type deviceTokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewDeviceTokenService creates a new device token service instance.
func NewDeviceTokenService(secret string, lifetime time.Duration) adapter.DeviceTokenService {
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}
	return &deviceTokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// GenerateDeviceToken issues a signed token for an enrolled device.
func (s *deviceTokenService) GenerateDeviceToken(ctx context.Context, deviceID, deviceName string) (string, error) {
	now := time.Now().UTC()
	claims := DeviceClaims{
		DeviceID:   deviceID,
		DeviceName: deviceName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   deviceID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign device token: %w", err)
	}
	return signed, nil
}

// ValidateDeviceToken validates a device token and returns its claims.
// Malformed, mis-signed, and expired tokens all map to
// ErrInvalidDeviceToken.
func (s *deviceTokenService) ValidateDeviceToken(ctx context.Context, tokenString string) (*adapter.DeviceTokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DeviceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainerror.ErrInvalidDeviceToken, err)
	}

	claims, ok := token.Claims.(*DeviceClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid claims", domainerror.ErrInvalidDeviceToken)
	}

	return &adapter.DeviceTokenClaims{
		DeviceID:   claims.DeviceID,
		DeviceName: claims.DeviceName,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
