// Package inventory reads the item manifest that feeds the catalog. A
// manifest is a TOML file listing known items, an optional block-list of
// item identifiers, and an optional sequence of user actions to replay into
// the history.
//
//	blocked = ["com.example.game"]
//
//	[[item]]
//	id = "com.example.browser"
//	name = "Browser"
//	usage = "1h30m"
//	dependents = ["com.example.webview"]
//
//	[[action]]
//	item = "com.example.game"
//	name = "Game"
//	kind = "block"
package inventory

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lockmeow/lockmeow/internal/catalog"
)

// Sentinel errors for manifest loading and validation.
var (
	// ErrNoManifest indicates the manifest file does not exist.
	ErrNoManifest = errors.New("manifest not found")
	// ErrMissingField indicates a required field (e.g. id) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrDuplicateID indicates two items share the same identifier.
	ErrDuplicateID = errors.New("duplicate item ID")
	// ErrInvalidUsage indicates an unparseable usage duration.
	ErrInvalidUsage = errors.New("invalid usage duration")
	// ErrUnknownItem indicates a reference to an item the manifest does not declare.
	ErrUnknownItem = errors.New("unknown item")
)

// ItemSpec is one [[item]] table.
type ItemSpec struct {
	ID         string   `toml:"id"`
	Name       string   `toml:"name"`
	Blocked    bool     `toml:"blocked,omitempty"`
	Usage      string   `toml:"usage,omitempty"`
	Dependents []string `toml:"dependents,omitempty"`
}

// ActionSpec is one [[action]] table.
type ActionSpec struct {
	Item string `toml:"item"`
	Name string `toml:"name,omitempty"`
	Kind string `toml:"kind"`
}

// Manifest is the decoded manifest file.
type Manifest struct {
	Blocked []string     `toml:"blocked,omitempty"`
	Items   []ItemSpec   `toml:"item"`
	Actions []ActionSpec `toml:"action,omitempty"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoManifest, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates manifest bytes. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks item identifiers, usage durations and action references,
// joining every problem found into one error.
func (m *Manifest) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(m.Items))
	for i, it := range m.Items {
		if it.ID == "" {
			errs = append(errs, fmt.Errorf("item %d: %w: id", i, ErrMissingField))
			continue
		}
		if seen[it.ID] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, it.ID))
		}
		seen[it.ID] = true
		if _, err := it.usage(); err != nil {
			errs = append(errs, fmt.Errorf("item %s: %w", it.ID, err))
		}
	}
	for i, a := range m.Actions {
		switch {
		case a.Item == "":
			errs = append(errs, fmt.Errorf("action %d: %w: item", i, ErrMissingField))
		case !seen[a.Item]:
			errs = append(errs, fmt.Errorf("action %d: %w: %s", i, ErrUnknownItem, a.Item))
		}
		if _, err := catalog.ParseActionKind(a.Kind); err != nil {
			errs = append(errs, fmt.Errorf("action %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (it ItemSpec) usage() (time.Duration, error) {
	if it.Usage == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(it.Usage)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUsage, it.Usage)
	}
	return d, nil
}

// Item returns the item table with the given id.
func (m *Manifest) Item(id string) (ItemSpec, error) {
	for _, it := range m.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return ItemSpec{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
}

// IsBlocked reports whether id appears on the manifest's block-list.
func (m *Manifest) IsBlocked(id string) bool {
	for _, b := range m.Blocked {
		if b == id {
			return true
		}
	}
	return false
}

// CatalogItems converts the item tables into catalog items. An item is
// blocked when it says so itself or when the block-list names it.
func (m *Manifest) CatalogItems() []catalog.Item {
	items := make([]catalog.Item, 0, len(m.Items))
	for _, it := range m.Items {
		usage, _ := it.usage() // validated on load
		name := it.Name
		if name == "" {
			name = it.ID
		}
		items = append(items, catalog.Item{
			ID:          it.ID,
			DisplayName: name,
			Blocked:     it.Blocked || m.IsBlocked(it.ID),
			UsageTime:   usage,
			Dependents:  it.Dependents,
		})
	}
	return items
}

// Apply ingests the manifest's items into c and replays its actions, in
// file order, into c's history.
func (m *Manifest) Apply(c *catalog.Catalog) {
	c.Ingest(m.CatalogItems())
	for _, a := range m.Actions {
		kind, err := catalog.ParseActionKind(a.Kind)
		if err != nil {
			continue // rejected by Validate
		}
		name := a.Name
		if name == "" {
			if e, ok := c.CachedMetadata(a.Item); ok {
				name = e.DisplayName
			} else {
				name = a.Item
			}
		}
		c.RecordAction(a.Item, name, kind)
	}
}
