package cache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"loppa/internal/types"
)

const (
	// keyPrefix namespaces cache records in a shared backend.
	keyPrefix = "loppa-weather-cache-"

	// TTL is the maximum age a cached snapshot may reach before it is
	// considered stale.
	TTL = 15 * time.Minute
)

// Entry is the serialized cache record. Timestamps inside the snapshot carry
// their zone offsets so instants survive the store/load boundary.
type Entry struct {
	Snapshot  types.WeatherSnapshot `json:"snapshot"`
	FetchedAt time.Time             `json:"fetchedAt"`
}

// Key derives the cache key for a coordinate pair. Coordinates are rounded
// to two decimal places (~1.1 km) so near-duplicate requests such as GPS
// jitter share one cache line.
func Key(lat, lon float64) string {
	return fmt.Sprintf("%s%.2f-%.2f", keyPrefix, lat, lon)
}

// Cache is the location-keyed weather snapshot cache. It owns its entries:
// stale or malformed records are removed on read, and writes are best-effort.
type Cache struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func New(store Store, logger *slog.Logger) *Cache {
	return &Cache{
		store:  store,
		logger: logger.With("component", "weather-cache"),
		now:    time.Now,
	}
}

// Get returns the cached snapshot for the rounded coordinates, or nil when
// there is no entry, the entry is malformed, or the entry has outlived the
// TTL. Stale and malformed entries are removed before returning.
func (c *Cache) Get(lat, lon float64) *types.WeatherSnapshot {
	key := Key(lat, lon)

	raw, err := c.store.Read(key)
	if err != nil {
		return nil
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.Warn("removing malformed cache entry", "key", key, "error", err)
		c.remove(key)
		return nil
	}

	if err := entry.Snapshot.Validate(); err != nil {
		c.logger.Warn("removing invalid cache entry", "key", key, "error", err)
		c.remove(key)
		return nil
	}

	age := c.now().Sub(entry.FetchedAt)
	if age > TTL {
		c.logger.Debug("removing expired cache entry", "key", key, "age", age.String())
		c.remove(key)
		return nil
	}

	c.logger.Debug("cache hit", "key", key, "age", age.String())
	return &entry.Snapshot
}

// Put stores a snapshot for the rounded coordinates, replacing any previous
// entry. Caching is best-effort: a failing backend never blocks a fetch, so
// errors are logged and swallowed.
func (c *Cache) Put(lat, lon float64, snapshot *types.WeatherSnapshot) {
	key := Key(lat, lon)

	entry := Entry{Snapshot: *snapshot, FetchedAt: c.now()}
	raw, err := json.Marshal(entry)
	if err != nil {
		c.logger.Warn("failed to serialize cache entry", "key", key, "error", err)
		return
	}

	if err := c.store.Write(key, raw); err != nil {
		c.logger.Warn("failed to write cache entry", "key", key, "error", err)
		return
	}

	c.logger.Debug("snapshot cached", "key", key, "ttl", TTL.String())
}

func (c *Cache) remove(key string) {
	if err := c.store.Delete(key); err != nil {
		c.logger.Warn("failed to delete cache entry", "key", key, "error", err)
	}
}
