// Package cloudsync implements the synchronization engine that keeps the
// local entity store consistent with the remote record store.
package cloudsync

import (
	"time"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/valueobject"
)

// itemRecord is the typed form of a remote item record. Absent optional
// fields are already defaulted; decode fails instead of guessing when a
// present field does not parse.
type itemRecord struct {
	ID          uuid.UUID
	Name        string
	Quantity    *int64
	SortOrder   int
	SymbolName  string
	SymbolColor *entity.Color
	ImageData   []byte
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

// categoryRecord is the typed form of a remote category record.
type categoryRecord struct {
	ID           uuid.UUID
	Name         string
	SortOrder    int
	DisplayInRow bool
}

// locationRecord is the typed form of a remote location record.
type locationRecord struct {
	ID           uuid.UUID
	Name         string
	Color        entity.Color
	SortOrder    int
	DisplayInRow bool
}

// decodeItemRecord maps a remote record onto its typed form. It returns
// false when the id is missing or unparsable, or when any present field
// fails its type parse; such records are skipped by the pull, never retried.
func decodeItemRecord(rec *valueobject.Record) (*itemRecord, bool) {
	id, ok := recordID(rec)
	if !ok {
		return nil, false
	}

	out := &itemRecord{ID: id}
	out.Name, _ = rec.StringField(valueobject.FieldName)
	out.SymbolName, _ = rec.StringField(valueobject.FieldSymbol)

	if rec.Has(valueobject.FieldQuantity) {
		q, ok := rec.IntField(valueobject.FieldQuantity)
		if !ok {
			return nil, false
		}
		out.Quantity = &q
	}

	sortOrder, ok := decodeSortOrder(rec)
	if !ok {
		return nil, false
	}
	out.SortOrder = sortOrder

	out.ModifiedAt = time.Now().UTC()
	if rec.Has(valueobject.FieldModifiedDate) {
		t, ok := rec.TimeField(valueobject.FieldModifiedDate)
		if !ok {
			return nil, false
		}
		out.ModifiedAt = t
	}

	out.CreatedAt = out.ModifiedAt
	if rec.Has(valueobject.FieldCreationDate) {
		t, ok := rec.TimeField(valueobject.FieldCreationDate)
		if !ok {
			return nil, false
		}
		out.CreatedAt = t
	}

	if rec.Has(valueobject.FieldSymbolColor) {
		b, ok := rec.BytesField(valueobject.FieldSymbolColor)
		if !ok {
			return nil, false
		}
		c := entity.ColorFromBytes(b, entity.ColorAccent)
		out.SymbolColor = &c
	}

	if rec.Has(valueobject.FieldImageData) {
		b, ok := rec.BytesField(valueobject.FieldImageData)
		if !ok {
			return nil, false
		}
		out.ImageData = b
	}

	return out, true
}

// decodeCategoryRecord maps a remote record onto its typed form, applying
// the remote-supplied defaults (sort order 0, display-in-row true) for
// absent optional fields.
func decodeCategoryRecord(rec *valueobject.Record) (*categoryRecord, bool) {
	id, ok := recordID(rec)
	if !ok {
		return nil, false
	}

	out := &categoryRecord{ID: id, DisplayInRow: true}
	out.Name, _ = rec.StringField(valueobject.FieldName)

	sortOrder, ok := decodeSortOrder(rec)
	if !ok {
		return nil, false
	}
	out.SortOrder = sortOrder

	if rec.Has(valueobject.FieldDisplayInRow) {
		v, ok := rec.BoolField(valueobject.FieldDisplayInRow)
		if !ok {
			return nil, false
		}
		out.DisplayInRow = v
	}

	return out, true
}

// decodeLocationRecord maps a remote record onto its typed form. A color
// blob of the wrong length falls back to white rather than failing the
// record.
func decodeLocationRecord(rec *valueobject.Record) (*locationRecord, bool) {
	id, ok := recordID(rec)
	if !ok {
		return nil, false
	}

	out := &locationRecord{ID: id, Color: entity.ColorWhite, DisplayInRow: true}
	out.Name, _ = rec.StringField(valueobject.FieldName)

	sortOrder, ok := decodeSortOrder(rec)
	if !ok {
		return nil, false
	}
	out.SortOrder = sortOrder

	if rec.Has(valueobject.FieldDisplayInRow) {
		v, ok := rec.BoolField(valueobject.FieldDisplayInRow)
		if !ok {
			return nil, false
		}
		out.DisplayInRow = v
	}

	if rec.Has(valueobject.FieldColorData) {
		b, ok := rec.BytesField(valueobject.FieldColorData)
		if !ok {
			return nil, false
		}
		out.Color = entity.ColorFromBytes(b, entity.ColorWhite)
	}

	return out, true
}

// recordID extracts and parses the stable identifier field.
func recordID(rec *valueobject.Record) (uuid.UUID, bool) {
	raw, ok := rec.StringField(valueobject.FieldID)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// decodeSortOrder reads the sort order field, defaulting to 0 when absent.
func decodeSortOrder(rec *valueobject.Record) (int, bool) {
	if !rec.Has(valueobject.FieldSortOrder) {
		return 0, true
	}
	v, ok := rec.IntField(valueobject.FieldSortOrder)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// encodeItemRecord builds the remote record for an item. The record is named
// by the item's UUID; nil optional fields are omitted rather than written as
// explicit nulls.
func encodeItemRecord(item *entity.Item) *valueobject.Record {
	rec := valueobject.NewRecord(item.ID.String())
	rec.SetString(valueobject.FieldID, item.ID.String())
	rec.SetString(valueobject.FieldName, item.Name)
	rec.SetInt(valueobject.FieldSortOrder, int64(item.SortOrder))
	rec.SetTime(valueobject.FieldModifiedDate, item.ModifiedAt)
	rec.SetTime(valueobject.FieldCreationDate, item.CreatedAt)

	if item.Quantity != nil {
		rec.SetInt(valueobject.FieldQuantity, *item.Quantity)
	}
	if item.SymbolName != "" {
		rec.SetString(valueobject.FieldSymbol, item.SymbolName)
	}
	if item.SymbolColor != nil {
		rec.SetBytes(valueobject.FieldSymbolColor, item.SymbolColor.Bytes())
	}
	if len(item.ImageData) > 0 {
		rec.SetBytes(valueobject.FieldImageData, item.ImageData)
	}

	return rec
}

// encodeCategoryRecord builds the remote record for a category.
func encodeCategoryRecord(category *entity.Category) *valueobject.Record {
	rec := valueobject.NewRecord(category.ID.String())
	rec.SetString(valueobject.FieldID, category.ID.String())
	rec.SetString(valueobject.FieldName, category.Name)
	rec.SetInt(valueobject.FieldSortOrder, int64(category.SortOrder))
	rec.SetBool(valueobject.FieldDisplayInRow, category.DisplayInRow)
	return rec
}

// encodeLocationRecord builds the remote record for a location.
func encodeLocationRecord(location *entity.Location) *valueobject.Record {
	rec := valueobject.NewRecord(location.ID.String())
	rec.SetString(valueobject.FieldID, location.ID.String())
	rec.SetString(valueobject.FieldName, location.Name)
	rec.SetInt(valueobject.FieldSortOrder, int64(location.SortOrder))
	rec.SetBool(valueobject.FieldDisplayInRow, location.DisplayInRow)
	rec.SetBytes(valueobject.FieldColorData, location.Color.Bytes())
	return rec
}
