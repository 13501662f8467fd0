// Package cloudsync implements the synchronization engine that keeps the
// local entity store consistent with the remote record store.
package cloudsync

import (
	"context"
	"log/slog"

	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/valueobject"
)

// pushAll uploads local state into the remote zones, one entity type at a
// time: items, then categories, then locations. There is no dirty
// tracking: every push uploads every local entity. An empty batch skips
// the network call for that zone.
func (e *Engine) pushAll(ctx context.Context, store LocalStore) error {
	if err := e.pushItems(ctx, store); err != nil {
		return err
	}
	if err := e.pushCategories(ctx, store); err != nil {
		return err
	}
	return e.pushLocations(ctx, store)
}

// pushItems uploads every local item into the item zone.
func (e *Engine) pushItems(ctx context.Context, store LocalStore) error {
	items, err := store.Items.FindAll(ctx)
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePushFailed,
			"failed to load local items",
			err,
		)
	}
	if len(items) == 0 {
		return nil
	}

	records := make([]*valueobject.Record, 0, len(items))
	for _, item := range items {
		records = append(records, encodeItemRecord(item))
	}

	if err := e.records.SaveBatch(ctx, valueobject.ZoneItems, records); err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePushFailed,
			"failed to save item records",
			err,
		)
	}
	slog.Debug("Pushed item records", "count", len(records))
	return nil
}

// pushCategories uploads every local category into the category zone.
func (e *Engine) pushCategories(ctx context.Context, store LocalStore) error {
	categories, err := store.Categories.FindAll(ctx)
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePushFailed,
			"failed to load local categories",
			err,
		)
	}
	if len(categories) == 0 {
		return nil
	}

	records := make([]*valueobject.Record, 0, len(categories))
	for _, category := range categories {
		records = append(records, encodeCategoryRecord(category))
	}

	if err := e.records.SaveBatch(ctx, valueobject.ZoneCategories, records); err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePushFailed,
			"failed to save category records",
			err,
		)
	}
	slog.Debug("Pushed category records", "count", len(records))
	return nil
}

// pushLocations uploads every local location into the location zone.
func (e *Engine) pushLocations(ctx context.Context, store LocalStore) error {
	locations, err := store.Locations.FindAll(ctx)
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePushFailed,
			"failed to load local locations",
			err,
		)
	}
	if len(locations) == 0 {
		return nil
	}

	records := make([]*valueobject.Record, 0, len(locations))
	for _, location := range locations {
		records = append(records, encodeLocationRecord(location))
	}

	if err := e.records.SaveBatch(ctx, valueobject.ZoneLocations, records); err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePushFailed,
			"failed to save location records",
			err,
		)
	}
	slog.Debug("Pushed location records", "count", len(records))
	return nil
}
