// Package cloudsync implements the synchronization engine that keeps the
// local entity store consistent with the remote record store.
package cloudsync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/valueobject"
)

// pullAll reconciles remote state into the local store, one entity type at
// a time: items, then categories, then locations. This is a full-resync,
// remote-authoritative overwrite: every field present on a remote record
// replaces the local value outright. A transport failure aborts the phase;
// already-applied local mutations from earlier entity types are kept.
func (e *Engine) pullAll(ctx context.Context, store LocalStore) error {
	if err := e.pullItems(ctx, store); err != nil {
		return err
	}
	if err := e.pullCategories(ctx, store); err != nil {
		return err
	}
	return e.pullLocations(ctx, store)
}

// pullItems reconciles the item zone. Records failing the typed decode are
// skipped silently; the rest of the batch is still processed.
func (e *Engine) pullItems(ctx context.Context, store LocalStore) error {
	records, err := e.records.QueryAll(ctx, valueobject.ZoneItems)
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePullFailed,
			"failed to query item records",
			err,
		)
	}

	skipped := 0
	for _, rec := range records {
		decoded, ok := decodeItemRecord(rec)
		if !ok {
			skipped++
			continue
		}
		e.applyItemRecord(ctx, store, decoded)
	}
	if skipped > 0 {
		slog.Debug("Skipped malformed item records", "count", skipped)
	}
	return nil
}

// applyItemRecord upserts one decoded item record. The remote modification
// timestamp wins unconditionally. Local persistence failures are logged and
// the record is dropped; they never abort the pull.
func (e *Engine) applyItemRecord(ctx context.Context, store LocalStore, rec *itemRecord) {
	existing, err := store.Items.FindByID(ctx, rec.ID)
	if err != nil && !errors.Is(err, domainerror.ErrItemNotFound) {
		slog.Error("Failed to load local item during pull", "item_id", rec.ID, "error", err)
		return
	}

	if existing == nil {
		item := &entity.Item{
			ID:          rec.ID,
			Name:        rec.Name,
			Quantity:    rec.Quantity,
			ImageData:   rec.ImageData,
			SymbolName:  rec.SymbolName,
			SymbolColor: rec.SymbolColor,
			SortOrder:   rec.SortOrder,
			CreatedAt:   rec.CreatedAt,
			ModifiedAt:  rec.ModifiedAt,
		}
		if err := store.Items.Create(ctx, item); err != nil {
			slog.Error("Failed to insert pulled item", "item_id", rec.ID, "error", err)
		}
		return
	}

	existing.Name = rec.Name
	existing.Quantity = rec.Quantity
	existing.SortOrder = rec.SortOrder
	existing.SymbolName = rec.SymbolName
	existing.SymbolColor = rec.SymbolColor
	existing.ImageData = rec.ImageData
	existing.ModifiedAt = rec.ModifiedAt
	if err := store.Items.Update(ctx, existing); err != nil {
		slog.Error("Failed to update pulled item", "item_id", rec.ID, "error", err)
	}
}

// pullCategories reconciles the category zone.
func (e *Engine) pullCategories(ctx context.Context, store LocalStore) error {
	records, err := e.records.QueryAll(ctx, valueobject.ZoneCategories)
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePullFailed,
			"failed to query category records",
			err,
		)
	}

	skipped := 0
	for _, rec := range records {
		decoded, ok := decodeCategoryRecord(rec)
		if !ok {
			skipped++
			continue
		}
		e.applyCategoryRecord(ctx, store, decoded)
	}
	if skipped > 0 {
		slog.Debug("Skipped malformed category records", "count", skipped)
	}
	return nil
}

// applyCategoryRecord upserts one decoded category record.
func (e *Engine) applyCategoryRecord(ctx context.Context, store LocalStore, rec *categoryRecord) {
	existing, err := store.Categories.FindByID(ctx, rec.ID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		slog.Error("Failed to load local category during pull", "category_id", rec.ID, "error", err)
		return
	}

	now := time.Now().UTC()

	if existing == nil {
		category := &entity.Category{
			ID:           rec.ID,
			Name:         rec.Name,
			SortOrder:    rec.SortOrder,
			DisplayInRow: rec.DisplayInRow,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.Categories.Create(ctx, category); err != nil {
			slog.Error("Failed to insert pulled category", "category_id", rec.ID, "error", err)
		}
		return
	}

	existing.Name = rec.Name
	existing.SortOrder = rec.SortOrder
	existing.DisplayInRow = rec.DisplayInRow
	existing.UpdatedAt = now
	if err := store.Categories.Update(ctx, existing); err != nil {
		slog.Error("Failed to update pulled category", "category_id", rec.ID, "error", err)
	}
}

// pullLocations reconciles the location zone.
func (e *Engine) pullLocations(ctx context.Context, store LocalStore) error {
	records, err := e.records.QueryAll(ctx, valueobject.ZoneLocations)
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodePullFailed,
			"failed to query location records",
			err,
		)
	}

	skipped := 0
	for _, rec := range records {
		decoded, ok := decodeLocationRecord(rec)
		if !ok {
			skipped++
			continue
		}
		e.applyLocationRecord(ctx, store, decoded)
	}
	if skipped > 0 {
		slog.Debug("Skipped malformed location records", "count", skipped)
	}
	return nil
}

// applyLocationRecord upserts one decoded location record.
func (e *Engine) applyLocationRecord(ctx context.Context, store LocalStore, rec *locationRecord) {
	existing, err := store.Locations.FindByID(ctx, rec.ID)
	if err != nil && !errors.Is(err, domainerror.ErrLocationNotFound) {
		slog.Error("Failed to load local location during pull", "location_id", rec.ID, "error", err)
		return
	}

	now := time.Now().UTC()

	if existing == nil {
		location := &entity.Location{
			ID:           rec.ID,
			Name:         rec.Name,
			Color:        rec.Color,
			SortOrder:    rec.SortOrder,
			DisplayInRow: rec.DisplayInRow,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.Locations.Create(ctx, location); err != nil {
			slog.Error("Failed to insert pulled location", "location_id", rec.ID, "error", err)
		}
		return
	}

	existing.Name = rec.Name
	existing.Color = rec.Color
	existing.SortOrder = rec.SortOrder
	existing.DisplayInRow = rec.DisplayInRow
	existing.UpdatedAt = now
	if err := store.Locations.Update(ctx, existing); err != nil {
		slog.Error("Failed to update pulled location", "location_id", rec.ID, "error", err)
	}
}
