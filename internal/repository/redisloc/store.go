// Package redisloc keeps driver locations in Redis.
//
// Each driver has a hash at {prefix}driver:location:{id}. Available drivers are
// tracked in the set {prefix}drivers:available and every write is indexed by
// time in the sorted set {prefix}drivers:updated. Writes that touch more than
// one key run as Lua scripts so they are atomic.
package redisloc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"service-dispatch/internal/domain"
)

const (
	fieldLat       = "lat"
	fieldLon       = "lon"
	fieldSpeed     = "speed"
	fieldHeading   = "heading"
	fieldAvailable = "available"
	fieldUpdatedAt = "updated_at"
)

var upsertScript = redis.NewScript(`
local existed = redis.call('EXISTS', KEYS[1])
redis.call('HSET', KEYS[1], 'lat', ARGV[2], 'lon', ARGV[3], 'speed', ARGV[4], 'heading', ARGV[5], 'updated_at', ARGV[6])
if existed == 0 then
  redis.call('HSET', KEYS[1], 'available', '1')
  redis.call('SADD', KEYS[2], ARGV[1])
end
redis.call('ZADD', KEYS[3], ARGV[7], ARGV[1])
return redis.call('HGETALL', KEYS[1])
`)

var availabilityScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return false
end
redis.call('HSET', KEYS[1], 'available', ARGV[2])
if ARGV[2] == '1' then
  redis.call('SADD', KEYS[2], ARGV[1])
else
  redis.call('SREM', KEYS[2], ARGV[1])
end
return redis.call('HGETALL', KEYS[1])
`)

var expireScript = redis.NewScript(`
local ids = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', '(' .. ARGV[1])
local n = 0
for _, id in ipairs(ids) do
  if redis.call('SREM', KEYS[2], id) == 1 then
    redis.call('HSET', ARGV[2] .. id, 'available', '0')
    n = n + 1
  end
end
return n
`)

// Store implements the location registry storage on Redis.
type Store struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewStore returns a Store using prefix for all keys.
func NewStore(rdb redis.UniversalClient, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

func (s *Store) locationKeyPrefix() string { return s.prefix + "driver:location:" }
func (s *Store) locationKey(id uuid.UUID) string {
	return s.locationKeyPrefix() + id.String()
}
func (s *Store) availableKey() string { return s.prefix + "drivers:available" }
func (s *Store) updatedKey() string   { return s.prefix + "drivers:updated" }

// Upsert writes the report; a new record starts available.
func (s *Store) Upsert(ctx context.Context, r domain.LocationReport, at time.Time) (*domain.DriverLocation, error) {
	id := r.DriverID.String()
	res, err := upsertScript.Run(ctx, s.rdb,
		[]string{s.locationKey(r.DriverID), s.availableKey(), s.updatedKey()},
		id,
		formatFloat(r.Latitude),
		formatFloat(r.Longitude),
		formatOptional(r.Speed),
		formatOptional(r.Heading),
		at.UTC().Format(time.RFC3339Nano),
		at.UnixMilli(),
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("upsert location %s: %w", id, err)
	}
	return parsePairs(r.DriverID, res)
}

// SetAvailability returns nil, nil when the driver has no record.
func (s *Store) SetAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*domain.DriverLocation, error) {
	flag := "0"
	if available {
		flag = "1"
	}
	res, err := availabilityScript.Run(ctx, s.rdb,
		[]string{s.locationKey(driverID), s.availableKey()},
		driverID.String(), flag,
	).Slice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("set availability %s: %w", driverID, err)
	}
	return parsePairs(driverID, res)
}

// Get returns nil, nil when the driver has no record.
func (s *Store) Get(ctx context.Context, driverID uuid.UUID) (*domain.DriverLocation, error) {
	m, err := s.rdb.HGetAll(ctx, s.locationKey(driverID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get location %s: %w", driverID, err)
	}
	if len(m) == 0 {
		return nil, nil
	}
	return parseHash(driverID, m)
}

// ListAvailable returns available records, oldest update first.
func (s *Store) ListAvailable(ctx context.Context) ([]domain.DriverLocation, error) {
	ids, err := s.rdb.SMembers(ctx, s.availableKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list available: %w", err)
	}
	if len(ids) == 0 {
		return []domain.DriverLocation{}, nil
	}

	type pending struct {
		id  uuid.UUID
		cmd *redis.MapStringStringCmd
	}
	cmds := make([]pending, 0, len(ids))
	pipe := s.rdb.Pipeline()
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		cmds = append(cmds, pending{id: id, cmd: pipe.HGetAll(ctx, s.locationKey(id))})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("list available: %w", err)
	}

	out := make([]domain.DriverLocation, 0, len(cmds))
	for _, p := range cmds {
		m := p.cmd.Val()
		if len(m) == 0 {
			continue
		}
		l, err := parseHash(p.id, m)
		if err != nil {
			return nil, err
		}
		// the set and the hash are updated together, but a reader may race a toggle
		if l.Available {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	return out, nil
}

// ExpireStale marks available records written before the cutoff unavailable.
func (s *Store) ExpireStale(ctx context.Context, before time.Time) (int64, error) {
	n, err := expireScript.Run(ctx, s.rdb,
		[]string{s.updatedKey(), s.availableKey()},
		before.UnixMilli(), s.locationKeyPrefix(),
	).Int64()
	if err != nil {
		return 0, fmt.Errorf("expire stale locations: %w", err)
	}
	return n, nil
}

func parsePairs(id uuid.UUID, pairs []interface{}) (*domain.DriverLocation, error) {
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		k, _ := pairs[i].(string)
		v, _ := pairs[i+1].(string)
		m[k] = v
	}
	return parseHash(id, m)
}

func parseHash(id uuid.UUID, m map[string]string) (*domain.DriverLocation, error) {
	l := domain.DriverLocation{DriverID: id, Available: m[fieldAvailable] == "1"}

	var err error
	if l.Latitude, err = strconv.ParseFloat(m[fieldLat], 64); err != nil {
		return nil, fmt.Errorf("parse %s of %s: %w", fieldLat, id, err)
	}
	if l.Longitude, err = strconv.ParseFloat(m[fieldLon], 64); err != nil {
		return nil, fmt.Errorf("parse %s of %s: %w", fieldLon, id, err)
	}
	if l.Speed, err = parseOptional(m[fieldSpeed]); err != nil {
		return nil, fmt.Errorf("parse %s of %s: %w", fieldSpeed, id, err)
	}
	if l.Heading, err = parseOptional(m[fieldHeading]); err != nil {
		return nil, fmt.Errorf("parse %s of %s: %w", fieldHeading, id, err)
	}
	if l.UpdatedAt, err = time.Parse(time.RFC3339Nano, m[fieldUpdatedAt]); err != nil {
		return nil, fmt.Errorf("parse %s of %s: %w", fieldUpdatedAt, id, err)
	}
	return &l, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func parseOptional(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
