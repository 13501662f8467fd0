// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// SyncPhase represents the state of the sync engine's state machine.
type SyncPhase string

const (
	// SyncPhaseIdle means no sync operation is running and none has
	// completed since the last transition out of success/error.
	SyncPhaseIdle SyncPhase = "idle"

	// SyncPhaseSyncing means a pull and/or push operation is in flight.
	SyncPhaseSyncing SyncPhase = "syncing"

	// SyncPhaseSuccess means the most recent operation completed cleanly.
	SyncPhaseSuccess SyncPhase = "success"

	// SyncPhaseError means the most recent operation failed; Message on
	// SyncStatus carries the human-readable description.
	SyncPhaseError SyncPhase = "error"
)

// SyncStatus is the snapshot of the sync engine's published observables:
// the state machine phase, the failure message (error phase only), the
// completion time of the last successful sync, and account availability.
type SyncStatus struct {
	Phase            SyncPhase
	Message          string
	LastSyncAt       *time.Time
	AccountAvailable bool
}
