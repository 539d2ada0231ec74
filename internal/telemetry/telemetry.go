// Package telemetry provides a JSONL event log of catalog mutations. Every
// recorded or undone action, index change, dependency edge and cache update
// is written as one JSON object per line, so a session can be audited or
// tailed while it runs.
package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindActionRecorded  = "action_recorded"
	KindActionUndone    = "action_undone"
	KindHistoryCleared  = "history_cleared"
	KindItemIndexed     = "item_indexed"
	KindItemRemoved     = "item_removed"
	KindDependencyAdded = "dependency_added"
	KindMetadataCached  = "metadata_cached"
	KindBlockChanged    = "block_changed"
	KindCacheCleared    = "cache_cleared"
	KindIngested        = "ingested"
)

// Event is a single telemetry record: a timestamp, a kind tag, the item it
// concerns (if any) and arbitrary structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	ItemID    string    `json:"item,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes events as JSONL. It is safe for concurrent use by multiple
// goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	closer io.Closer
	enc    *json.Encoder
	mu     sync.Mutex
}

// NewEmitter creates an Emitter that appends to the file at path, creating
// it if it does not exist.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		closer: f,
		enc:    json.NewEncoder(f),
	}, nil
}

// NewWriterEmitter creates an Emitter that writes to w. Close does not
// close w.
func NewWriterEmitter(w io.Writer) *Emitter {
	return &Emitter{enc: json.NewEncoder(w)}
}

// Emit writes a single event. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the Emitter owns one. Calling Close
// on a nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.closer.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
