package inventory

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeManifest(t, "[[item]]\nid = \"a\"\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[[item]]\nid = \"a\"\n[[item]]\nid = \"b\"\n"), 0o644); err != nil {
		t.Fatalf("failed to update manifest: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.Err != nil {
			t.Fatalf("unexpected reload error: %v", change.Err)
		}
		if got := len(change.Manifest.Items); got != 2 {
			t.Errorf("expected 2 items after reload, got %d", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_ReportsInvalidManifest(t *testing.T) {
	path := writeManifest(t, "[[item]]\nid = \"a\"\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[[item]]\nname = \"no id\"\n"), 0o644); err != nil {
		t.Fatalf("failed to update manifest: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.Err == nil {
			t.Fatal("expected reload error for manifest without id")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path := writeManifest(t, "[[item]]\nid = \"a\"\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	select {
	case change := <-w.Changes:
		t.Errorf("unexpected change: %+v", change)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopWithUnreadChanges(t *testing.T) {
	path := writeManifest(t, "[[item]]\nid = \"a\"\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	for i := 0; i < cap(w.changes); i++ {
		w.changes <- Change{}
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("[[item]]\nid = \"b\"\n"), 0o644); err != nil {
		t.Fatalf("failed to update manifest: %v", err)
	}
	// Let the debounce fire so the loop blocks delivering to the full channel.
	time.Sleep(400 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked while Changes was full")
	}
}
