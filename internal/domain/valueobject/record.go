// Package valueobject contains domain value objects for the Inventory system.
package valueobject

import (
	"encoding/base64"
	"strconv"
	"time"
)

// Zone names for the three per-entity record zones in the remote store.
const (
	ZoneItems      = "InventoryItems"
	ZoneCategories = "InventoryCategories"
	ZoneLocations  = "InventoryLocations"
)

// SyncZones returns the three zones in the order sync phases process them.
func SyncZones() []string {
	return []string{ZoneItems, ZoneCategories, ZoneLocations}
}

// Field names used across the remote record schema.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldQuantity     = "quantity"
	FieldSortOrder    = "sortOrder"
	FieldModifiedDate = "modifiedDate"
	FieldCreationDate = "itemCreationDate"
	FieldSymbol       = "symbol"
	FieldSymbolColor  = "symbolColorData"
	FieldImageData    = "imageData"
	FieldDisplayInRow = "displayInRow"
	FieldColorData    = "colorData"
)

// Record is a unit of remote storage: a named record holding string-encoded
// fields. Absent optional fields are omitted from the map entirely rather
// than written as empty values. Field encodings are: integers in base 10,
// booleans as "true"/"false", timestamps in RFC 3339 with nanoseconds, and
// binary data in standard base64.
type Record struct {
	Name   string
	Fields map[string]string
}

// NewRecord creates an empty record with the given name.
func NewRecord(name string) *Record {
	return &Record{
		Name:   name,
		Fields: make(map[string]string),
	}
}

// Has reports whether the field is present on the record.
func (r *Record) Has(field string) bool {
	_, ok := r.Fields[field]
	return ok
}

// StringField returns the raw string value of a field.
func (r *Record) StringField(field string) (string, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// IntField decodes a base-10 integer field. It returns false when the field
// is absent or does not parse.
func (r *Record) IntField(field string) (int64, bool) {
	raw, ok := r.Fields[field]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// BoolField decodes a boolean field. It returns false when the field is
// absent or does not parse.
func (r *Record) BoolField(field string) (bool, bool) {
	raw, ok := r.Fields[field]
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// TimeField decodes an RFC 3339 timestamp field. It returns false when the
// field is absent or does not parse.
func (r *Record) TimeField(field string) (time.Time, bool) {
	raw, ok := r.Fields[field]
	if !ok {
		return time.Time{}, false
	}
	v, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return v, true
}

// BytesField decodes a base64 binary field. It returns false when the field
// is absent or does not decode.
func (r *Record) BytesField(field string) ([]byte, bool) {
	raw, ok := r.Fields[field]
	if !ok {
		return nil, false
	}
	v, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, false
	}
	return v, true
}

// SetString stores a raw string field.
func (r *Record) SetString(field, value string) {
	r.Fields[field] = value
}

// SetInt stores an integer field in base 10.
func (r *Record) SetInt(field string, value int64) {
	r.Fields[field] = strconv.FormatInt(value, 10)
}

// SetBool stores a boolean field as "true" or "false".
func (r *Record) SetBool(field string, value bool) {
	r.Fields[field] = strconv.FormatBool(value)
}

// SetTime stores a timestamp field in RFC 3339 with nanoseconds.
func (r *Record) SetTime(field string, value time.Time) {
	r.Fields[field] = value.UTC().Format(time.RFC3339Nano)
}

// SetBytes stores a binary field in standard base64.
func (r *Record) SetBytes(field string, value []byte) {
	r.Fields[field] = base64.StdEncoding.EncodeToString(value)
}
