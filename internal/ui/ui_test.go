package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lockmeow/lockmeow/internal/ansi"
	"github.com/lockmeow/lockmeow/internal/catalog"
)

func TestStats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, false).Stats(catalog.Stats{
		HistorySize:     2,
		IndexedItems:    3,
		IndexHeight:     2,
		Vertices:        3,
		Edges:           1,
		CachedItems:     3,
		CacheCapacity:   16,
		CacheLoadFactor: 0.1875,
	}, true)

	checks := []struct {
		name   string
		substr string
	}{
		{"history", "2 action(s)"},
		{"index", "3 item(s), height 2"},
		{"edges", "1 edge(s)"},
		{"cyclic marker", "(cyclic)"},
		{"cache", "3/16 (load 0.19)"},
	}
	for _, c := range checks {
		if !strings.Contains(buf.String(), c.substr) {
			t.Errorf("expected output to contain %s (%q), got:\n%s", c.name, c.substr, buf.String())
		}
	}
}

func TestColorDisabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, false)
	p.Error("boom")
	p.Success("done")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected no escape codes, got %q", buf.String())
	}
}

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, true).Error("boom")
	if !strings.Contains(buf.String(), ansi.Red) {
		t.Errorf("expected red escape code, got %q", buf.String())
	}
}

func TestItems(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, false).Items([]ItemRow{
		{ID: "com.a", Name: "A", Blocked: true, Usage: time.Hour, Cached: true},
		{ID: "com.bb", Name: "B", Cached: true},
		{ID: "com.c"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "blocked") || !strings.Contains(lines[0], "1h0m0s") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "allowed") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "(no metadata)") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestItems_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, false).Items(nil)
	if !strings.Contains(buf.String(), "(no items)") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	New(&buf, false).History([]catalog.Action{
		{ItemID: "b", DisplayName: "B", Kind: catalog.ActionUnblock, Timestamp: ts},
		{ItemID: "a", DisplayName: "A", Kind: catalog.ActionBlock, Timestamp: ts},
	})

	out := buf.String()
	first := strings.Index(out, "unblock: B (b)")
	second := strings.Index(out, "block: A (a)")
	if first < 0 || second < 0 || first > second {
		t.Errorf("history not rendered most recent first:\n%s", out)
	}
	if !strings.Contains(out, "2024-03-01 12:00:00") {
		t.Errorf("missing timestamp:\n%s", out)
	}
}

func TestDependencyTree(t *testing.T) {
	t.Parallel()

	children := map[string][]string{
		"root": {"a", "b"},
		"a":    {"c"},
		"b":    {"c"},
		"c":    {"root"},
	}
	var buf bytes.Buffer
	New(&buf, false).DependencyTree("root", func(id string) []string { return children[id] })

	want := strings.Join([]string{
		"root",
		"├── a",
		"│   └── c",
		"│       └── root (seen)",
		"└── b",
		"    └── c (seen)",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("DependencyTree:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, false)
	p.List([]string{"x", "y"}, "(none)")
	p.List(nil, "(none)")
	if buf.String() != "  x\n  y\n(none)\n" {
		t.Errorf("got %q", buf.String())
	}
}
