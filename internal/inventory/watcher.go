package inventory

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is a reload outcome for the watched manifest. Exactly one of
// Manifest and Err is set.
type Change struct {
	Manifest *Manifest
	Err      error
}

// Watcher monitors a single manifest file and reloads it after writes
// settle. The parent directory is watched so editors that replace the file
// by rename are still observed.
type Watcher struct {
	Path    string
	Changes <-chan Change // Read-only external channel

	changes  chan Change
	stop     chan struct{}
	done     chan struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a watcher for the manifest at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}

	ch := make(chan Change, 4)
	return &Watcher{
		Path:     abs,
		Changes:  ch,
		changes:  ch,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Start begins watching the manifest's directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. A reload pending when
// Stop is called is discarded.
func (w *Watcher) Stop() {
	close(w.stop)
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var last time.Time
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				last = time.Now()
			}

		case <-ticker.C:
			if !last.IsZero() && time.Since(last) >= w.debounce {
				last = time.Time{}
				w.reload()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) reload() {
	m, err := Load(w.Path)
	select {
	case w.changes <- Change{Manifest: m, Err: err}:
	case <-w.stop:
	}
}
