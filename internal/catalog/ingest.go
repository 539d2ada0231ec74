package catalog

import (
	"time"

	"github.com/lockmeow/lockmeow/internal/telemetry"
)

// Item is one record supplied by an item source.
type Item struct {
	ID          string
	DisplayName string
	Blocked     bool
	UsageTime   time.Duration
	// Dependents lists the identifiers of items that depend on this one.
	Dependents []string
}

// Ingest indexes, caches and tracks every item, then records each item's
// dependents. Items are not deduplicated beyond what the index and cache
// already guarantee.
func (c *Catalog) Ingest(items []Item) {
	for _, it := range items {
		c.IndexItem(it.ID)
		c.CacheMetadata(it.ID, it.DisplayName, it.Blocked, it.UsageTime)
		c.Track(it.ID)
	}
	edges := 0
	for _, it := range items {
		for _, dep := range it.Dependents {
			c.AddDependency(it.ID, dep)
			edges++
		}
	}
	c.logger.Info("items ingested", "items", len(items), "dependencies", edges, "indexed", c.index.Len())
	c.emit(telemetry.KindIngested, "", map[string]int{"items": len(items), "dependencies": edges})
}
