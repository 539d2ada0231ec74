package catalog

import (
	"time"

	"github.com/lockmeow/lockmeow/internal/telemetry"
)

// CacheEntry is the cached metadata for one item.
type CacheEntry struct {
	DisplayName  string
	Blocked      bool
	UsageTime    time.Duration
	LastAccessed time.Time
}

// CacheMetadata stores metadata for itemID, replacing any previous entry.
func (c *Catalog) CacheMetadata(itemID, displayName string, blocked bool, usage time.Duration) {
	c.cache.Put(itemID, &CacheEntry{
		DisplayName:  displayName,
		Blocked:      blocked,
		UsageTime:    usage,
		LastAccessed: c.now(),
	})
	c.logger.Debug("metadata cached", "item", itemID, "blocked", blocked)
	c.emit(telemetry.KindMetadataCached, itemID, map[string]any{
		"name":    displayName,
		"blocked": blocked,
	})
}

// CachedMetadata returns a copy of the metadata cached for itemID and marks
// the entry as accessed. The boolean is false when nothing is cached.
func (c *Catalog) CachedMetadata(itemID string) (CacheEntry, bool) {
	e, ok := c.cache.Get(itemID)
	if !ok {
		return CacheEntry{}, false
	}
	e.LastAccessed = c.now()
	return *e, true
}

// SetBlocked updates the blocked flag of a cached item and marks it as
// accessed. It reports false, and changes nothing, when the item is not
// cached.
func (c *Catalog) SetBlocked(itemID string, blocked bool) bool {
	e, ok := c.cache.Get(itemID)
	if !ok {
		return false
	}
	e.Blocked = blocked
	e.LastAccessed = c.now()
	c.logger.Debug("block status updated", "item", itemID, "blocked", blocked)
	c.emit(telemetry.KindBlockChanged, itemID, map[string]bool{"blocked": blocked})
	return true
}

// IsCached reports whether metadata is cached for itemID.
func (c *Catalog) IsCached(itemID string) bool {
	return c.cache.ContainsKey(itemID)
}

// CachedKeys returns the identifiers of every cached item. The order is
// deterministic for a given sequence of operations but otherwise
// meaningless.
func (c *Catalog) CachedKeys() []string {
	return c.cache.Keys()
}

// ClearCache drops every cached entry. The cache keeps its capacity.
func (c *Catalog) ClearCache() {
	n := c.cache.Len()
	c.cache.Clear()
	c.logger.Debug("cache cleared", "dropped", n)
	c.emit(telemetry.KindCacheCleared, "", map[string]int{"dropped": n})
}

// CacheStats describes the metadata cache's occupancy.
type CacheStats struct {
	Entries      int
	Capacity     int
	LoadFactor   float64
	EmptyBuckets int
	LongestChain int
}

// CacheStats returns the current cache occupancy.
func (c *Catalog) CacheStats() CacheStats {
	bs := c.cache.BucketStats()
	return CacheStats{
		Entries:      bs.Entries,
		Capacity:     bs.Capacity,
		LoadFactor:   bs.LoadFactor,
		EmptyBuckets: bs.Empty,
		LongestChain: bs.Longest,
	}
}
