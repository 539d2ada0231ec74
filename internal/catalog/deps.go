package catalog

import "github.com/lockmeow/lockmeow/internal/telemetry"

// Track adds an item to the dependency graph without any edges.
func (c *Catalog) Track(itemID string) {
	c.deps.AddVertex(itemID)
}

// AddDependency records that dependent depends on parent. Either item is
// added to the graph if it is not already there.
func (c *Catalog) AddDependency(parent, dependent string) {
	c.deps.AddEdge(parent, dependent)
	c.logger.Debug("dependency added", "parent", parent, "dependent", dependent)
	c.emit(telemetry.KindDependencyAdded, parent, map[string]string{"dependent": dependent})
}

// HasDependency reports whether dependent is recorded as depending directly
// on parent.
func (c *Catalog) HasDependency(parent, dependent string) bool {
	return c.deps.HasEdge(parent, dependent)
}

// Dependents returns the items that depend directly on itemID, in the order
// the dependencies were added.
func (c *Catalog) Dependents(itemID string) []string {
	return c.deps.Neighbors(itemID)
}

// RelatedItems returns itemID followed by everything that transitively
// depends on it, in breadth-first order. Unknown items yield an empty
// result.
func (c *Catalog) RelatedItems(itemID string) []string {
	if !c.deps.HasVertex(itemID) {
		return nil
	}
	return c.deps.BreadthFirstSearch(itemID)
}

// HasCircularDependencies reports whether the dependency graph has a cycle.
func (c *Catalog) HasCircularDependencies() bool {
	return c.deps.HasCycle()
}
