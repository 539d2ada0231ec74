package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lockmeow/lockmeow/internal/telemetry"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "View the JSONL catalog event log",
	Long: `Reads and formats the event log written when event_log is configured.

With --follow (-f), watches the file for new events (like tail -f).`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipCatalog: "true"},
	RunE:        runEvents,
}

func init() {
	eventsCmd.Flags().String("file", "", "event log to read (default: configured event_log)")
	eventsCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	eventsCmd.Flags().String("kind", "", "only show events of this kind")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, _ []string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = a.cfg.EventLog
	}
	if path == "" {
		return errors.New("events: no event log configured; set event_log or pass --file")
	}
	follow, _ := cmd.Flags().GetBool("follow")
	kind, _ := cmd.Flags().GetString("kind")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("events: open %s: %w", path, err)
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	tail := newLineTail(f)
	emit := func(line string) { printEvent(out, line, kind) }
	if err := tail.drain(emit); err != nil {
		return fmt.Errorf("events: read %s: %w", path, err)
	}

	if !follow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return tailFollow(ctx, tail, path, emit)
}

// lineTail reads newline-terminated lines from a growing file. A trailing
// partial line is held back until its newline arrives.
type lineTail struct {
	r       *bufio.Reader
	partial strings.Builder
}

func newLineTail(r io.Reader) *lineTail {
	return &lineTail{r: bufio.NewReader(r)}
}

// drain calls fn for every complete non-blank line currently readable.
func (t *lineTail) drain(fn func(line string)) error {
	for {
		chunk, err := t.r.ReadString('\n')
		t.partial.WriteString(chunk)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line := strings.TrimSpace(t.partial.String())
		t.partial.Reset()
		if line != "" {
			fn(line)
		}
	}
}

// tailFollow watches the file for new data using fsnotify and prints new events.
func tailFollow(ctx context.Context, tail *lineTail, path string, fn func(string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("events: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("events: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if err := tail.drain(fn); err != nil {
				return fmt.Errorf("events: read %s: %w", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("events: watch %s: %w", path, err)
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
func printEvent(w io.Writer, line, kind string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}
	if kind != "" && evt.Kind != kind {
		return
	}

	parts := []string{fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)), evt.Kind}
	if evt.ItemID != "" {
		parts = append(parts, fmt.Sprintf("item=%s", evt.ItemID))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}
