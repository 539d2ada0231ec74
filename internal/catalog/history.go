package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lockmeow/lockmeow/internal/telemetry"
)

// ErrNoHistory is returned when undoing or inspecting an empty action
// history. It wraps together with stack.ErrEmpty.
var ErrNoHistory = errors.New("no recorded actions")

// ErrUnknownActionKind is returned by ParseActionKind for unrecognized names.
var ErrUnknownActionKind = errors.New("unknown action kind")

// ActionKind is what the user did to an item.
type ActionKind int

// Action kinds, in the order ParseActionKind recognizes them.
const (
	ActionBlock ActionKind = iota
	ActionUnblock
	ActionInstall
	ActionUninstall
)

var actionKindNames = [...]string{
	ActionBlock:     "block",
	ActionUnblock:   "unblock",
	ActionInstall:   "install",
	ActionUninstall: "uninstall",
}

// String returns the lower-case name of the kind.
func (k ActionKind) String() string {
	if int(k) >= 0 && int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// ParseActionKind converts a case-insensitive name into an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	for i, name := range actionKindNames {
		if strings.EqualFold(s, name) {
			return ActionKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownActionKind, s)
}

// Action is one entry in the history.
type Action struct {
	ID          uuid.UUID
	ItemID      string
	DisplayName string
	Kind        ActionKind
	Timestamp   time.Time
}

// String formats the action as "kind: name (id)".
func (a Action) String() string {
	return fmt.Sprintf("%s: %s (%s)", a.Kind, a.DisplayName, a.ItemID)
}

// RecordAction pushes a new action onto the history and returns it.
func (c *Catalog) RecordAction(itemID, displayName string, kind ActionKind) Action {
	a := Action{
		ID:          uuid.New(),
		ItemID:      itemID,
		DisplayName: displayName,
		Kind:        kind,
		Timestamp:   c.now(),
	}
	c.history.Push(a)
	c.logger.Debug("action recorded", "item", itemID, "kind", kind.String())
	c.emit(telemetry.KindActionRecorded, itemID, map[string]string{
		"action": a.ID.String(),
		"kind":   kind.String(),
	})
	return a
}

// LastAction returns the most recent action without removing it.
func (c *Catalog) LastAction() (Action, error) {
	a, err := c.history.Peek()
	if err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrNoHistory, err)
	}
	return a, nil
}

// UndoLastAction removes and returns the most recent action. An empty
// history is a caller error and is reported as ErrNoHistory.
func (c *Catalog) UndoLastAction() (Action, error) {
	a, err := c.history.Pop()
	if err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrNoHistory, err)
	}
	c.logger.Debug("action undone", "item", a.ItemID, "kind", a.Kind.String())
	c.emit(telemetry.KindActionUndone, a.ItemID, map[string]string{
		"action": a.ID.String(),
		"kind":   a.Kind.String(),
	})
	return a, nil
}

// ActionHistory returns every recorded action, most recent first. The
// history is not modified.
func (c *Catalog) ActionHistory() []Action {
	return c.history.Snapshot()
}

// ClearHistory drops every recorded action.
func (c *Catalog) ClearHistory() {
	n := c.history.Len()
	c.history.Clear()
	c.logger.Debug("history cleared", "dropped", n)
	c.emit(telemetry.KindHistoryCleared, "", map[string]int{"dropped": n})
}
