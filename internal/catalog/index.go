package catalog

import "github.com/lockmeow/lockmeow/internal/telemetry"

// IndexItem adds an item identifier to the sorted index. Indexing an
// identifier twice has no effect.
func (c *Catalog) IndexItem(itemID string) {
	c.index.Insert(itemID)
	c.logger.Debug("item indexed", "item", itemID)
	c.emit(telemetry.KindItemIndexed, itemID, nil)
}

// RemoveFromIndex drops an identifier from the sorted index. The cache and
// dependency graph are left as they are.
func (c *Catalog) RemoveFromIndex(itemID string) {
	c.index.Delete(itemID)
	c.logger.Debug("item removed from index", "item", itemID)
	c.emit(telemetry.KindItemRemoved, itemID, nil)
}

// IsIndexed reports whether itemID is in the sorted index.
func (c *Catalog) IsIndexed(itemID string) bool {
	return c.index.Search(itemID)
}

// SortedItems returns every indexed identifier in ascending order.
func (c *Catalog) SortedItems() []string {
	return c.index.InOrder()
}
