package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is one coalesced filesystem change.
type Event struct {
	Path string
	Op   string // "create", "write", "remove", "rename"
}

// Watcher observes the spec document and the source tree and reports
// relevant changes, debounced over a short window. Relevance is decided by
// the filter: events on paths it rejects are dropped before they arm the
// debouncer, so regenerated artifacts like README.md do not retrigger the
// pipeline.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	filter   func(path string) bool
	onChange func(Event)
}

// NewWatcher builds a watcher. A nil filter accepts every path; a zero
// debounce defaults to 300ms.
func NewWatcher(debounce time.Duration, filter func(string) bool, onChange func(Event)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 300 * time.Millisecond
	}
	if filter == nil {
		filter = func(string) bool { return true }
	}
	return &Watcher{fs: fs, debounce: debounce, filter: filter, onChange: onChange}, nil
}

// Close releases the underlying fsnotify watcher. Run closes it on return;
// Close is for callers that never reach Run.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Add watches a single file or directory (non-recursive).
func (w *Watcher) Add(path string) error {
	if err := w.fs.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	return nil
}

// AddRecursive watches a directory and every subdirectory beneath it.
func (w *Watcher) AddRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if err := w.fs.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// Run pumps filesystem events until the context is cancelled. Directories
// created while running are added to the watch set.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	var last Event
	debouncer := NewDebouncer(w.debounce, func() {
		if w.onChange != nil {
			w.onChange(last)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}

			op := opName(event.Op)
			if op == "" {
				continue
			}

			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.AddRecursive(event.Name)
					continue
				}
			}

			if !w.filter(event.Name) {
				continue
			}

			last = Event{Path: event.Name, Op: op}
			debouncer.Trigger()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
