// Package metrics exposes catalog occupancy as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/lockmeow/lockmeow/internal/catalog"
)

const namespace = "lockmeow"

// Source is the part of the catalog the collector reads.
type Source interface {
	Stats() catalog.Stats
	CacheStats() catalog.CacheStats
	HasCircularDependencies() bool
}

// Collector reports a fresh snapshot of a Source on every scrape.
type Collector struct {
	src Source

	historySize     *prometheus.Desc
	indexedItems    *prometheus.Desc
	indexHeight     *prometheus.Desc
	graphVertices   *prometheus.Desc
	graphEdges      *prometheus.Desc
	graphCyclic     *prometheus.Desc
	cacheEntries    *prometheus.Desc
	cacheCapacity   *prometheus.Desc
	cacheLoadFactor *prometheus.Desc
	cacheEmpty      *prometheus.Desc
	cacheLongest    *prometheus.Desc
}

// NewCollector creates a collector over src.
func NewCollector(src Source) *Collector {
	desc := func(subsystem, name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, nil)
	}
	return &Collector{
		src:             src,
		historySize:     desc("history", "actions", "Actions on the undo history."),
		indexedItems:    desc("index", "items", "Identifiers in the sorted index."),
		indexHeight:     desc("index", "height", "Height of the index search tree."),
		graphVertices:   desc("dependencies", "items", "Items in the dependency graph."),
		graphEdges:      desc("dependencies", "edges", "Dependency edges."),
		graphCyclic:     desc("dependencies", "cyclic", "1 when the dependency graph has a cycle."),
		cacheEntries:    desc("cache", "entries", "Cached metadata entries."),
		cacheCapacity:   desc("cache", "buckets", "Bucket count of the metadata cache."),
		cacheLoadFactor: desc("cache", "load_factor", "Entries per bucket."),
		cacheEmpty:      desc("cache", "empty_buckets", "Buckets holding no entries."),
		cacheLongest:    desc("cache", "longest_chain", "Entries in the fullest bucket."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.historySize, c.indexedItems, c.indexHeight,
		c.graphVertices, c.graphEdges, c.graphCyclic,
		c.cacheEntries, c.cacheCapacity, c.cacheLoadFactor, c.cacheEmpty, c.cacheLongest,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	cs := c.src.CacheStats()
	cyclic := 0.0
	if c.src.HasCircularDependencies() {
		cyclic = 1
	}

	gauge := func(d *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v)
	}
	gauge(c.historySize, float64(s.HistorySize))
	gauge(c.indexedItems, float64(s.IndexedItems))
	gauge(c.indexHeight, float64(s.IndexHeight))
	gauge(c.graphVertices, float64(s.Vertices))
	gauge(c.graphEdges, float64(s.Edges))
	gauge(c.graphCyclic, cyclic)
	gauge(c.cacheEntries, float64(cs.Entries))
	gauge(c.cacheCapacity, float64(cs.Capacity))
	gauge(c.cacheLoadFactor, cs.LoadFactor)
	gauge(c.cacheEmpty, float64(cs.EmptyBuckets))
	gauge(c.cacheLongest, float64(cs.LongestChain))
}

// NewRegistry returns a registry holding only a collector over src.
func NewRegistry(src Source) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(src))
	return reg
}

// WriteText gathers reg and writes it to w in the Prometheus text
// exposition format.
func WriteText(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
