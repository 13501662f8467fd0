// Package cloudstore implements the remote record store on Redis. Records
// live in named zones scoped to a container:
//
//	ck:{container}:zones                  set of provisioned zone names
//	ck:{container}:zone:{z}:ids           set of record names in zone z
//	ck:{container}:zone:{z}:rec:{name}    hash of the record's fields
//
// Saving writes only the fields present on each record, so fields absent
// from an update keep their stored values.
package cloudstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/valueobject"
)

type recordStore struct {
	client    *redis.Client
	container string
}

// NewRecordStore creates a Redis-backed record store scoped to the given
// container.
func NewRecordStore(client *redis.Client, container string) adapter.RecordStore {
	return &recordStore{
		client:    client,
		container: container,
	}
}

// Ping checks that the store is reachable.
func (s *recordStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return unavailable("ping failed", err)
	}
	return nil
}

// EnsureZones provisions the given zones. Provisioning is idempotent:
// already-existing zones are left untouched.
func (s *recordStore) EnsureZones(ctx context.Context, zones []string) error {
	if len(zones) == 0 {
		return nil
	}
	members := make([]interface{}, len(zones))
	for i, zone := range zones {
		members[i] = zone
	}
	if err := s.client.SAdd(ctx, s.zonesKey(), members...).Err(); err != nil {
		return unavailable("failed to provision zones", err)
	}
	return nil
}

// QueryAll retrieves every record in a zone, sorted by record name. Querying
// a zone that has not been provisioned returns ErrZoneNotFound.
func (s *recordStore) QueryAll(ctx context.Context, zone string) ([]*valueobject.Record, error) {
	exists, err := s.client.SIsMember(ctx, s.zonesKey(), zone).Result()
	if err != nil {
		return nil, unavailable("failed to check zone", err)
	}
	if !exists {
		return nil, fmt.Errorf("zone %s: %w", zone, domainerror.ErrZoneNotFound)
	}
	return s.fetchZone(ctx, zone)
}

// QueryByID retrieves the record whose "id" field equals id. The match is on
// the id field, never on the record's own name.
func (s *recordStore) QueryByID(ctx context.Context, zone, id string) (*valueobject.Record, error) {
	records, err := s.fetchZone(ctx, zone)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Fields[valueobject.FieldID] == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("zone %s id %s: %w", zone, id, domainerror.ErrRecordNotFound)
}

// SaveBatch upserts records into a zone in a single pipeline. Only the
// fields present on each record are written; the zone is provisioned
// implicitly when missing.
func (s *recordStore) SaveBatch(ctx context.Context, zone string, records []*valueobject.Record) error {
	if len(records) == 0 {
		return nil
	}

	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, s.zonesKey(), zone)
		for _, rec := range records {
			pipe.SAdd(ctx, s.idsKey(zone), rec.Name)
			if len(rec.Fields) > 0 {
				pipe.HSet(ctx, s.recordKey(zone, rec.Name), rec.Fields)
			}
		}
		return nil
	})
	if err != nil {
		return unavailable(fmt.Sprintf("failed to save %d records to zone %s", len(records), zone), err)
	}
	return nil
}

// fetchZone loads every record in a zone without checking zone existence.
// An unprovisioned zone simply yields no records.
func (s *recordStore) fetchZone(ctx context.Context, zone string) ([]*valueobject.Record, error) {
	names, err := s.client.SMembers(ctx, s.idsKey(zone)).Result()
	if err != nil {
		return nil, unavailable("failed to list zone records", err)
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	cmds := make([]*redis.MapStringStringCmd, len(names))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, name := range names {
			cmds[i] = pipe.HGetAll(ctx, s.recordKey(zone, name))
		}
		return nil
	})
	if err != nil {
		return nil, unavailable("failed to load zone records", err)
	}

	records := make([]*valueobject.Record, 0, len(names))
	for i, name := range names {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			// Stale index entry: the hash was removed out of band.
			continue
		}
		records = append(records, &valueobject.Record{Name: name, Fields: fields})
	}
	return records, nil
}

func (s *recordStore) zonesKey() string {
	return "ck:" + s.container + ":zones"
}

func (s *recordStore) idsKey(zone string) string {
	return "ck:" + s.container + ":zone:" + zone + ":ids"
}

func (s *recordStore) recordKey(zone, name string) string {
	return "ck:" + s.container + ":zone:" + zone + ":rec:" + name
}

// unavailable wraps a transport error so callers can detect the outage with
// errors.Is against ErrCloudUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domainerror.ErrCloudUnavailable, op, err)
}
