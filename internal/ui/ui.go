// Package ui renders catalog state for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lockmeow/lockmeow/internal/ansi"
	"github.com/lockmeow/lockmeow/internal/catalog"
)

// Printer writes human-readable output. Color codes are emitted only when
// color is enabled.
type Printer struct {
	out   io.Writer
	color bool
}

// New creates a printer writing to w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{out: w, color: color}
}

func (p *Printer) style(s string, codes ...string) string {
	if !p.color {
		return s
	}
	return ansi.Style(s, codes...)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style("error:", ansi.Red, ansi.Bold), msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.style(msg, ansi.Dim))
}

func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style("✓", ansi.Green, ansi.Bold), msg)
}

// Stats prints the aggregate container sizes.
func (p *Printer) Stats(s catalog.Stats, cyclic bool) {
	fmt.Fprintln(p.out, p.style("catalog:", ansi.Bold, ansi.Cyan))
	fmt.Fprintf(p.out, "  history:       %d action(s)\n", s.HistorySize)
	fmt.Fprintf(p.out, "  index:         %d item(s), height %d\n", s.IndexedItems, s.IndexHeight)
	fmt.Fprintf(p.out, "  dependencies:  %d item(s), %d edge(s)", s.Vertices, s.Edges)
	if cyclic {
		fmt.Fprint(p.out, " "+p.style("(cyclic)", ansi.Yellow))
	}
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "  cache:         %d/%d (load %.2f)\n", s.CachedItems, s.CacheCapacity, s.CacheLoadFactor)
}

// ItemRow is one line of the item listing.
type ItemRow struct {
	ID      string
	Name    string
	Blocked bool
	Usage   time.Duration
	Cached  bool
}

// Items prints one row per item in the order given.
func (p *Printer) Items(rows []ItemRow) {
	if len(rows) == 0 {
		p.Info("(no items)")
		return
	}
	width := 0
	for _, r := range rows {
		width = max(width, len(r.ID))
	}
	for _, r := range rows {
		status := p.style("allowed", ansi.Green)
		if r.Blocked {
			status = p.style("blocked", ansi.Red)
		}
		if !r.Cached {
			fmt.Fprintf(p.out, "  %-*s  %s\n", width, r.ID, p.style("(no metadata)", ansi.Dim))
			continue
		}
		fmt.Fprintf(p.out, "  %-*s  %s  %-20s %s\n", width, r.ID, status, r.Name, p.style(r.Usage.String(), ansi.Dim))
	}
}

// History prints actions most recent first, numbering from 1.
func (p *Printer) History(actions []catalog.Action) {
	if len(actions) == 0 {
		p.Info("(no recorded actions)")
		return
	}
	for i, a := range actions {
		fmt.Fprintf(p.out, "  %s %s %s\n",
			p.style(fmt.Sprintf("%2d.", i+1), ansi.Dim),
			a.String(),
			p.style(a.Timestamp.Format(time.DateTime), ansi.Dim))
	}
}

// Undone reports an action removed from the history.
func (p *Printer) Undone(a catalog.Action) {
	fmt.Fprintf(p.out, "%s %s\n", p.style("↶ undone", ansi.Yellow, ansi.Bold), a.String())
}

// DependencyTree prints root and everything reachable through children as
// an indented tree. An item reached a second time is printed once more with
// a marker and not expanded again.
func (p *Printer) DependencyTree(root string, children func(string) []string) {
	seen := map[string]bool{root: true}
	fmt.Fprintln(p.out, p.style(root, ansi.Bold))
	p.subtree(root, "", children, seen)
}

func (p *Printer) subtree(id, prefix string, children func(string) []string, seen map[string]bool) {
	kids := children(id)
	for i, kid := range kids {
		branch, next := "├── ", "│   "
		if i == len(kids)-1 {
			branch, next = "└── ", "    "
		}
		if seen[kid] {
			fmt.Fprintf(p.out, "%s%s%s %s\n", prefix, branch, kid, p.style("(seen)", ansi.Dim))
			continue
		}
		seen[kid] = true
		fmt.Fprintf(p.out, "%s%s%s\n", prefix, branch, kid)
		p.subtree(kid, prefix+next, children, seen)
	}
}

// CacheStats prints the bucket occupancy of the metadata cache.
func (p *Printer) CacheStats(cs catalog.CacheStats) {
	fmt.Fprintln(p.out, p.style("cache:", ansi.Bold, ansi.Cyan))
	fmt.Fprintf(p.out, "  entries:        %d\n", cs.Entries)
	fmt.Fprintf(p.out, "  buckets:        %d (%d empty)\n", cs.Capacity, cs.EmptyBuckets)
	fmt.Fprintf(p.out, "  load factor:    %.2f\n", cs.LoadFactor)
	fmt.Fprintf(p.out, "  longest chain:  %d\n", cs.LongestChain)
}

// List prints ids one per line, or the empty placeholder when there are none.
func (p *Printer) List(ids []string, empty string) {
	if len(ids) == 0 {
		p.Info(empty)
		return
	}
	fmt.Fprintln(p.out, "  "+strings.Join(ids, "\n  "))
}
