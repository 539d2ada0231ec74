// Package catalog composes the stack, search tree, graph and hash table
// containers into a single catalog of tracked items. It keeps an undoable
// history of user actions, a sorted index of item identifiers, a directed
// dependency graph between items and a cache of per-item metadata.
//
// A Catalog is meant to be constructed once by the program's composition
// root and handed to whatever needs it. It performs no locking; callers that
// share one across goroutines must serialize every method call.
package catalog

import (
	"io"
	"log/slog"
	"time"

	"github.com/lockmeow/lockmeow/internal/bst"
	"github.com/lockmeow/lockmeow/internal/graph"
	"github.com/lockmeow/lockmeow/internal/hashtable"
	"github.com/lockmeow/lockmeow/internal/stack"
	"github.com/lockmeow/lockmeow/internal/telemetry"
)

// Sink receives an event for every catalog mutation. *telemetry.Emitter
// satisfies it.
type Sink interface {
	Emit(evt telemetry.Event) error
}

// Catalog owns one instance of each container and exposes domain-shaped
// operations over them.
type Catalog struct {
	history *stack.Stack[Action]
	index   *bst.Tree[string]
	deps    *graph.Graph[string]
	cache   *hashtable.Table[string, *CacheEntry]

	logger *slog.Logger
	now    func() time.Time
	sink   Sink
}

type options struct {
	logger        *slog.Logger
	now           func() time.Time
	sink          Sink
	cacheCapacity int
}

// Option configures a Catalog.
type Option func(*options)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock overrides the time source used for action timestamps and cache
// access times.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithEventSink sends every mutation to sink.
func WithEventSink(sink Sink) Option {
	return func(o *options) { o.sink = sink }
}

// WithCacheCapacity sets the initial bucket count of the metadata cache.
func WithCacheCapacity(n int) Option {
	return func(o *options) { o.cacheCapacity = n }
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	o := options{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
		cacheCapacity: hashtable.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Catalog{
		history: stack.New[Action](),
		index:   bst.NewOrdered[string](),
		deps:    graph.New[string](true),
		cache:   hashtable.NewString[*CacheEntry](hashtable.WithCapacity(o.cacheCapacity)),
		logger:  o.logger,
		now:     o.now,
		sink:    o.sink,
	}
	c.logger.Debug("catalog initialized", "cache_capacity", c.cache.Cap())
	return c
}

// emit forwards an event to the sink. Sink failures are logged and never
// fail the catalog operation that produced them.
func (c *Catalog) emit(kind, itemID string, data any) {
	if c.sink == nil {
		return
	}
	evt := telemetry.Event{
		Timestamp: c.now(),
		Kind:      kind,
		ItemID:    itemID,
		Data:      data,
	}
	if err := c.sink.Emit(evt); err != nil {
		c.logger.Warn("telemetry emit failed", "kind", kind, "error", err)
	}
}

// Stats is an aggregate snapshot of every container's size.
type Stats struct {
	HistorySize     int
	IndexedItems    int
	IndexHeight     int
	Vertices        int
	Edges           int
	CachedItems     int
	CacheCapacity   int
	CacheLoadFactor float64
}

// Stats returns the current aggregate counts.
func (c *Catalog) Stats() Stats {
	return Stats{
		HistorySize:     c.history.Len(),
		IndexedItems:    c.index.Len(),
		IndexHeight:     c.index.Height(),
		Vertices:        c.deps.VertexCount(),
		Edges:           c.deps.EdgeCount(),
		CachedItems:     c.cache.Len(),
		CacheCapacity:   c.cache.Cap(),
		CacheLoadFactor: c.cache.LoadFactor(),
	}
}
