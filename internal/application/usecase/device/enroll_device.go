// Package device contains device enrollment use cases.
package device

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// MaxDeviceNameLength is the maximum allowed length for device names.
const MaxDeviceNameLength = 100

// EnrollDeviceInput represents the input for device enrollment.
type EnrollDeviceInput struct {
	Passphrase string
	DeviceName string
}

// EnrollDeviceOutput represents the output of device enrollment.
type EnrollDeviceOutput struct {
	DeviceID    string
	DeviceName  string
	DeviceToken string
	ExpiresAt   time.Time
}

// EnrollDeviceUseCase exchanges the container passphrase for a device
// token. A successful enrollment persists the device identity to settings,
// which is what makes the sync engine consider the account available.
type EnrollDeviceUseCase struct {
	passphraseHash string
	passphrases    adapter.PassphraseService
	tokens         adapter.DeviceTokenService
	settingsRepo   adapter.SettingsRepository
}

// NewEnrollDeviceUseCase creates a new EnrollDeviceUseCase instance. An
// empty passphraseHash disables enrollment entirely.
func NewEnrollDeviceUseCase(
	passphraseHash string,
	passphrases adapter.PassphraseService,
	tokens adapter.DeviceTokenService,
	settingsRepo adapter.SettingsRepository,
) *EnrollDeviceUseCase {
	return &EnrollDeviceUseCase{
		passphraseHash: passphraseHash,
		passphrases:    passphrases,
		tokens:         tokens,
		settingsRepo:   settingsRepo,
	}
}

// Execute performs the enrollment.
func (uc *EnrollDeviceUseCase) Execute(ctx context.Context, input EnrollDeviceInput) (*EnrollDeviceOutput, error) {
	if uc.passphraseHash == "" {
		return nil, domainerror.NewDeviceError(
			domainerror.ErrCodeEnrollmentDisabled,
			"device enrollment is not configured",
			domainerror.ErrEnrollmentDisabled,
		)
	}

	deviceName := strings.TrimSpace(input.DeviceName)
	if deviceName == "" {
		return nil, domainerror.NewDeviceError(
			domainerror.ErrCodeMissingDeviceName,
			"device name is required",
			domainerror.ErrMissingDeviceName,
		)
	}
	if len(deviceName) > MaxDeviceNameLength {
		return nil, domainerror.NewDeviceError(
			domainerror.ErrCodeMissingDeviceName,
			fmt.Sprintf("device name must not exceed %d characters", MaxDeviceNameLength),
			domainerror.ErrMissingDeviceName,
		)
	}

	if err := uc.passphrases.VerifyPassphrase(uc.passphraseHash, input.Passphrase); err != nil {
		return nil, domainerror.NewDeviceError(
			domainerror.ErrCodeInvalidPassphrase,
			"invalid container passphrase",
			domainerror.ErrInvalidPassphrase,
		)
	}

	deviceID := uuid.New().String()
	token, err := uc.tokens.GenerateDeviceToken(ctx, deviceID, deviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate device token: %w", err)
	}

	claims, err := uc.tokens.ValidateDeviceToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to validate issued token: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	settings.DeviceID = deviceID
	settings.DeviceName = deviceName
	settings.DeviceToken = token
	settings.UpdatedAt = time.Now().UTC()
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to persist device identity: %w", err)
	}

	return &EnrollDeviceOutput{
		DeviceID:    deviceID,
		DeviceName:  deviceName,
		DeviceToken: token,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}
