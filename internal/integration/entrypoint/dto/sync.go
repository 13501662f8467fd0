// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// SyncStatusResponse represents the sync engine's published observables.
type SyncStatusResponse struct {
	Phase            string     `json:"phase"`
	Message          string     `json:"message,omitempty"`
	LastSyncAt       *time.Time `json:"last_sync_at,omitempty"`
	AccountAvailable bool       `json:"account_available"`
}

// AccountRefreshResponse represents the result of re-running the account
// availability check.
type AccountRefreshResponse struct {
	AccountAvailable bool `json:"account_available"`
}

// ToSyncStatusResponse converts a SyncStatus snapshot to its DTO.
func ToSyncStatusResponse(status entity.SyncStatus) SyncStatusResponse {
	return SyncStatusResponse{
		Phase:            string(status.Phase),
		Message:          status.Message,
		LastSyncAt:       status.LastSyncAt,
		AccountAvailable: status.AccountAvailable,
	}
}
