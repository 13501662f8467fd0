// Package cloudsync implements the synchronization engine that keeps the
// local entity store consistent with the remote record store.
package cloudsync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/valueobject"
)

// syncFlightKey is the single-flight key shared by every sync invocation so
// that only one cycle is in flight at a time; concurrent callers await the
// in-flight result.
const syncFlightKey = "sync"

// operation selects which phases a sync cycle runs.
type operation struct {
	name string
	pull bool
	push bool
}

var (
	opManualSync = operation{name: "manual_sync", pull: true, push: true}
	opRefresh    = operation{name: "refresh_from_cloud", pull: true}
	opSend       = operation{name: "send_changes_to_cloud", push: true}
	opAutoTick   = operation{name: "automatic_tick", pull: true, push: true}
)

// LocalStore bundles the repository handles for the local entity store so
// the whole handle can be swapped in one step.
type LocalStore struct {
	Items      adapter.ItemRepository
	Categories adapter.CategoryRepository
	Locations  adapter.LocationRepository
}

// EngineConfig holds construction parameters for the sync engine.
type EngineConfig struct {
	// Container identifies the remote container the engine syncs against.
	Container string

	// TickInterval is the automatic sync interval applied when settings do
	// not override it.
	TickInterval time.Duration
}

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TickInterval: entity.DefaultSyncInterval,
	}
}

// Engine orchestrates synchronization between the local entity store and
// the remote record store: account availability checks, zone provisioning,
// pull, push, the automatic background tick, and the published sync status.
type Engine struct {
	mu     sync.RWMutex
	store  LocalStore
	status entity.SyncStatus

	records      adapter.RecordStore
	settingsRepo adapter.SettingsRepository
	tokens       adapter.DeviceTokenService
	container    string
	interval     time.Duration
	group        singleflight.Group
}

// NewEngine creates a sync engine over the given local store and remote
// record store. The engine does no IO until Start or one of the sync
// operations is invoked.
func NewEngine(
	store LocalStore,
	records adapter.RecordStore,
	settingsRepo adapter.SettingsRepository,
	tokens adapter.DeviceTokenService,
	config EngineConfig,
) *Engine {
	interval := config.TickInterval
	if interval <= 0 {
		interval = entity.DefaultSyncInterval
	}
	return &Engine{
		store:        store,
		records:      records,
		settingsRepo: settingsRepo,
		tokens:       tokens,
		container:    config.Container,
		interval:     interval,
		status:       entity.SyncStatus{Phase: entity.SyncPhaseIdle},
	}
}

// Status returns a snapshot of the published sync observables.
func (e *Engine) Status() entity.SyncStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

// AccountAvailable reports the availability recorded by the most recent
// account check.
func (e *Engine) AccountAvailable() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status.AccountAvailable
}

// UpdateLocalStore swaps the local store handle without reconstructing the
// engine. Operations already in flight keep the handle they started with.
func (e *Engine) UpdateLocalStore(store LocalStore) {
	e.mu.Lock()
	e.store = store
	e.mu.Unlock()
}

// ManualSync runs a full cycle: pull from the cloud, then push local state.
func (e *Engine) ManualSync(ctx context.Context) error {
	return e.runManual(ctx, opManualSync)
}

// RefreshFromCloud runs the pull phase only.
func (e *Engine) RefreshFromCloud(ctx context.Context) error {
	return e.runManual(ctx, opRefresh)
}

// SendChangesToCloud runs the push phase only.
func (e *Engine) SendChangesToCloud(ctx context.Context) error {
	return e.runManual(ctx, opSend)
}

// Tick runs one automatic sync cycle. The tick is skipped entirely when a
// sync is already in flight, when the account is unavailable, or when
// auto-sync is disabled in settings; failures are logged and swallowed so
// background syncs never surface transient errors.
func (e *Engine) Tick(ctx context.Context) {
	if e.syncing() {
		slog.Debug("Automatic sync skipped: sync already in flight")
		return
	}
	if !e.AccountAvailable() {
		slog.Debug("Automatic sync skipped: account unavailable")
		return
	}
	if !e.autoSyncEnabled(ctx) {
		slog.Debug("Automatic sync skipped: disabled in settings")
		return
	}

	_, err, _ := e.group.Do(syncFlightKey, func() (interface{}, error) {
		return nil, e.runCycle(ctx, opAutoTick, false)
	})
	if err != nil {
		slog.Warn("Automatic sync failed", "error", err)
	}
}

// RefreshAccount re-runs the account availability check and, when the
// account is available, provisions the three record zones. The result is
// published through the AccountAvailable observable.
func (e *Engine) RefreshAccount(ctx context.Context) bool {
	available := e.checkAccount(ctx)

	e.mu.Lock()
	e.status.AccountAvailable = available
	e.mu.Unlock()

	if available {
		if err := e.records.EnsureZones(ctx, valueobject.SyncZones()); err != nil {
			slog.Error("Failed to provision record zones", "error", err)
		}
	}
	return available
}

// Start restores the last sync time, checks account availability, and then
// drives the automatic sync ticker. It blocks until the context is
// cancelled.
func (e *Engine) Start(ctx context.Context) {
	if settings, err := e.settingsRepo.Get(ctx); err == nil {
		e.mu.Lock()
		e.status.LastSyncAt = settings.LastSyncAt
		e.mu.Unlock()
	}

	e.RefreshAccount(ctx)

	interval := e.tickInterval(ctx)
	slog.Info("Sync engine started",
		"container", e.container,
		"interval", interval,
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Sync engine shutting down")
			return
		case <-ticker.C:
			e.Tick(ctx)
			if next := e.tickInterval(ctx); next != interval {
				interval = next
				ticker.Reset(interval)
				slog.Info("Sync interval updated", "interval", interval)
			}
		}
	}
}

// runManual executes a user-invoked operation through the single-flight
// group, surfacing failures through the state machine.
func (e *Engine) runManual(ctx context.Context, op operation) error {
	_, err, _ := e.group.Do(syncFlightKey, func() (interface{}, error) {
		return nil, e.runCycle(ctx, op, true)
	})
	return err
}

// runCycle executes one sync cycle and drives the state machine. When
// surface is false the cycle belongs to the automatic tick: failures leave
// the state machine idle instead of publishing an error.
func (e *Engine) runCycle(ctx context.Context, op operation, surface bool) error {
	if !e.AccountAvailable() {
		err := domainerror.NewSyncError(
			domainerror.ErrCodeAccountUnavailable,
			"cloud account unavailable",
			domainerror.ErrAccountUnavailable,
		)
		if surface {
			e.publishError(err)
		}
		return err
	}

	e.publishSyncing()
	slog.Info("Sync started", "operation", op.name)

	if err := e.executePhases(ctx, op); err != nil {
		if surface {
			e.publishError(err)
		} else {
			e.publishIdle()
		}
		return err
	}

	e.markSuccess(ctx, op.pull && op.push)
	slog.Info("Sync completed", "operation", op.name)
	return nil
}

// executePhases runs the requested phases; pull always completes fully
// before push begins.
func (e *Engine) executePhases(ctx context.Context, op operation) error {
	store := e.localStore()

	if op.pull {
		if err := e.pullAll(ctx, store); err != nil {
			return err
		}
	}
	if op.push {
		if err := e.pushAll(ctx, store); err != nil {
			return err
		}
	}
	return nil
}

// checkAccount verifies that the device is enrolled, its token is still
// valid, and the cloud store is reachable.
func (e *Engine) checkAccount(ctx context.Context) bool {
	settings, err := e.settingsRepo.Get(ctx)
	if err != nil {
		slog.Error("Failed to load settings for account check", "error", err)
		return false
	}
	if !settings.Enrolled() {
		slog.Info("Account unavailable: device not enrolled")
		return false
	}
	if _, err := e.tokens.ValidateDeviceToken(ctx, settings.DeviceToken); err != nil {
		slog.Warn("Account unavailable: device token rejected", "error", err)
		return false
	}
	if err := e.records.Ping(ctx); err != nil {
		slog.Warn("Account unavailable: cloud store unreachable", "error", err)
		return false
	}
	return true
}

// autoSyncEnabled reads the settings toggle for the automatic tick.
func (e *Engine) autoSyncEnabled(ctx context.Context) bool {
	settings, err := e.settingsRepo.Get(ctx)
	if err != nil {
		slog.Error("Failed to load settings for automatic sync", "error", err)
		return true
	}
	return settings.AutoSyncEnabled
}

// tickInterval returns the effective automatic sync interval, preferring
// the persisted override.
func (e *Engine) tickInterval(ctx context.Context) time.Duration {
	settings, err := e.settingsRepo.Get(ctx)
	if err != nil {
		return e.interval
	}
	return settings.EffectiveInterval()
}

// localStore returns the current local store handle.
func (e *Engine) localStore() LocalStore {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store
}

// syncing reports whether a sync cycle is currently in flight.
func (e *Engine) syncing() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status.Phase == entity.SyncPhaseSyncing
}

func (e *Engine) publishSyncing() {
	e.mu.Lock()
	e.status.Phase = entity.SyncPhaseSyncing
	e.status.Message = ""
	e.mu.Unlock()
}

func (e *Engine) publishIdle() {
	e.mu.Lock()
	e.status.Phase = entity.SyncPhaseIdle
	e.status.Message = ""
	e.mu.Unlock()
}

func (e *Engine) publishError(err error) {
	e.mu.Lock()
	e.status.Phase = entity.SyncPhaseError
	e.status.Message = err.Error()
	e.mu.Unlock()
}

// markSuccess publishes the success state. Full cycles additionally stamp
// the last sync time and persist it to settings; a failed settings write is
// logged but does not demote the published success.
func (e *Engine) markSuccess(ctx context.Context, full bool) {
	var at time.Time

	e.mu.Lock()
	e.status.Phase = entity.SyncPhaseSuccess
	e.status.Message = ""
	if full {
		at = time.Now().UTC()
		e.status.LastSyncAt = &at
	}
	e.mu.Unlock()

	if !full {
		return
	}

	settings, err := e.settingsRepo.Get(ctx)
	if err != nil {
		slog.Error("Failed to load settings after sync", "error", err)
		return
	}
	settings.LastSyncAt = &at
	settings.UpdatedAt = at
	if err := e.settingsRepo.Save(ctx, settings); err != nil {
		slog.Error("Failed to persist last sync time", "error", err)
	}
}
