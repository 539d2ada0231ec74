package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockmeow/lockmeow/internal/inventory"
	"github.com/lockmeow/lockmeow/internal/telemetry"
)

const testManifest = `
blocked = ["com.example.game"]

[[item]]
id = "com.example.browser"
name = "Browser"
usage = "2h"
dependents = ["com.example.webview"]

[[item]]
id = "com.example.webview"
name = "WebView"
dependents = ["com.example.game"]

[[item]]
id = "com.example.game"
name = "Game"

[[action]]
item = "com.example.game"
kind = "block"
`

// execute runs rootCmd with args against a manifest written from content.
// Configuration is passed through the environment because persistent flag
// state survives between executions of the shared command tree.
func execute(t *testing.T, content string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	manifest := filepath.Join(dir, "items.toml")
	if content != "" {
		if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
			t.Fatalf("writing manifest: %v", err)
		}
	}
	t.Setenv("LOCKMEOW_MANIFEST", manifest)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"block", "cache", "demo", "deps", "events", "history", "items", "metrics", "stats", "unblock", "watch"}
	got := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("expected %q subcommand to be registered on rootCmd", name)
		}
	}
}

func TestStatsCmd(t *testing.T) {
	out, err := execute(t, testManifest, "stats")
	require.NoError(t, err)

	assert.Contains(t, out, "1 action(s)")
	assert.Contains(t, out, "3 item(s), height 3")
	assert.Contains(t, out, "2 edge(s)")
	assert.NotContains(t, out, "(cyclic)")
}

func TestStatsCmd_NoManifest(t *testing.T) {
	out, err := execute(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "0 item(s)")
}

func TestStatsCmd_InvalidManifest(t *testing.T) {
	_, err := execute(t, "[[item]]\nname = \"anonymous\"\n", "stats")
	assert.ErrorIs(t, err, inventory.ErrMissingField)
}

func TestItemsCmd(t *testing.T) {
	out, err := execute(t, testManifest, "items")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "com.example.browser")
	assert.Contains(t, lines[1], "com.example.game")
	assert.Contains(t, lines[1], "blocked")
	assert.Contains(t, lines[2], "com.example.webview")
}

func TestDepsCmd_Tree(t *testing.T) {
	out, err := execute(t, testManifest, "deps", "com.example.browser")
	require.NoError(t, err)

	want := "com.example.browser\n└── com.example.webview\n    └── com.example.game\n"
	assert.Equal(t, want, out)
}

func TestDepsCmd_Summary(t *testing.T) {
	out, err := execute(t, testManifest, "deps")
	require.NoError(t, err)
	assert.Contains(t, out, "3 item(s), 2 dependenc(ies), no cycles")
}

func TestDepsCmd_UnknownItem(t *testing.T) {
	_, err := execute(t, testManifest, "deps", "com.example.nothing")
	assert.ErrorIs(t, err, inventory.ErrUnknownItem)
}

func TestBlockCmd_WritesEventLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "events.jsonl")
	t.Setenv("LOCKMEOW_EVENT_LOG", logPath)

	out, err := execute(t, testManifest, "block", "com.example.browser")
	require.NoError(t, err)
	assert.Contains(t, out, "block: Browser (com.example.browser)")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"ingested"`)
	assert.Contains(t, string(data), `"kind":"block_changed","item":"com.example.browser"`)
}

func TestUnblockCmd_UnknownItem(t *testing.T) {
	_, err := execute(t, testManifest, "unblock", "com.example.nothing")
	assert.ErrorIs(t, err, inventory.ErrUnknownItem)
}

func TestCacheCmd(t *testing.T) {
	out, err := execute(t, testManifest, "cache", "--keys")
	require.NoError(t, err)

	assert.Contains(t, out, "entries:        3")
	assert.Contains(t, out, "  com.example.browser\n  com.example.game\n  com.example.webview\n")
}

func TestMetricsCmd(t *testing.T) {
	out, err := execute(t, testManifest, "metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "lockmeow_index_items 3\n")
	assert.Contains(t, out, "lockmeow_history_actions 1\n")
	assert.Contains(t, out, "lockmeow_dependencies_cyclic 0\n")
}

func TestHistoryCmd_Undo(t *testing.T) {
	out, err := execute(t, testManifest, "history", "--undo", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "undone block: Game (com.example.game)")
	assert.Contains(t, out, "(no recorded actions)")
}

func TestEventsCmd(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := telemetry.NewEmitter(logPath)
	require.NoError(t, err)
	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, em.Emit(telemetry.Event{Timestamp: ts, Kind: telemetry.KindItemIndexed, ItemID: "a"}))
	require.NoError(t, em.Emit(telemetry.Event{Timestamp: ts, Kind: telemetry.KindBlockChanged, ItemID: "a", Data: map[string]bool{"blocked": true}}))
	require.NoError(t, em.Close())

	out, err := execute(t, "", "events", "--file", logPath)
	require.NoError(t, err)

	assert.Equal(t, "[09:30:00] item_indexed item=a\n[09:30:00] block_changed item=a blocked=true\n", out)
}

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "", "demo")
	require.NoError(t, err)

	checks := []string{
		"after push: [third second first] (len 3)",
		"in-order:   [20 30 40 50 60 70 80]",
		"pre-order:  [50 30 20 40 70 60 80]",
		"post-order: [20 40 30 60 80 70 50]",
		"after delete 30: [20 40 50 60 70 80]",
		"dfs from A: [A B C D]",
		"bfs from A: [A B D C]",
		"cyclic: true, vertices: 4, edges: 4",
		"apple: 5, has kiwi: false",
		"apple after update: 10",
		"removed banana (3), size now 4",
	}
	for _, want := range checks {
		assert.Contains(t, out, want)
	}
}
