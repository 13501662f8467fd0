// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/valueobject"
)

// RecordStore defines the interface for the remote record-oriented store.
// Records live in named zones, one zone per entity type, scoped to a single
// container (the device owner's private database).
type RecordStore interface {
	// Ping checks that the remote store is reachable.
	Ping(ctx context.Context) error

	// EnsureZones provisions the given zones, creating any that do not
	// exist yet. Existing zones are left untouched.
	EnsureZones(ctx context.Context, zones []string) error

	// QueryAll retrieves every record in a zone (full-zone scan, no
	// server-side filtering).
	QueryAll(ctx context.Context, zone string) ([]*valueobject.Record, error)

	// QueryByID retrieves the record whose "id" field equals id. The match
	// is on the id field, never on the record's own name. Returns
	// ErrRecordNotFound when no record matches.
	QueryByID(ctx context.Context, zone, id string) (*valueobject.Record, error)

	// SaveBatch upserts a batch of records into a zone, writing only the
	// fields present on each record; fields absent from a record are left
	// at their stored values rather than cleared.
	SaveBatch(ctx context.Context, zone string, records []*valueobject.Record) error
}
