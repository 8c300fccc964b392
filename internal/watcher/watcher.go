// Package watcher provides debounced file watching on top of fsnotify.
package watcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned when operations are called on a closed Watcher.
var ErrClosed = errors.New("watcher: watcher is closed")

// EventType is a bit set of file system operations.
type EventType uint32

const (
	Create EventType = 1 << iota
	Write
	Remove
	Rename
	Chmod

	All = Create | Write | Remove | Rename | Chmod
)

// Event is one observed change.
type Event struct {
	Path string
	Type EventType
}

func eventTypeFromFsnotify(op fsnotify.Op) EventType {
	var t EventType
	if op.Has(fsnotify.Create) {
		t |= Create
	}
	if op.Has(fsnotify.Write) {
		t |= Write
	}
	if op.Has(fsnotify.Remove) {
		t |= Remove
	}
	if op.Has(fsnotify.Rename) {
		t |= Rename
	}
	if op.Has(fsnotify.Chmod) {
		t |= Chmod
	}
	return t
}

// Handler receives a debounced batch of events.
type Handler func(events []Event)

// ErrorHandler receives watch errors.
type ErrorHandler func(err error)

// Watcher watches files and directories. Events arriving within the
// debounce window are delivered together.
type Watcher struct {
	fsWatcher    *fsnotify.Watcher
	debouncer    *Debouncer
	handler      Handler
	errorHandler ErrorHandler
	eventFilter  EventType
	names        map[string]bool

	mu      sync.Mutex
	pending []Event
	closed  bool
	done    chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounceDuration sets the debounce window.
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debouncer = NewDebouncer(d)
		}
	}
}

// WithEventFilter restricts delivery to the given event types.
func WithEventFilter(filter EventType) Option {
	return func(w *Watcher) {
		w.eventFilter = filter
	}
}

// WithNames restricts delivery to events on files with one of the given
// base names. Watching a directory with a name filter follows a file
// across the rename-over-write saves most editors perform.
func WithNames(names ...string) Option {
	return func(w *Watcher) {
		for _, n := range names {
			w.names[n] = true
		}
	}
}

// WithErrorHandler sets the error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(w *Watcher) {
		w.errorHandler = handler
	}
}

// New creates a Watcher delivering batches to handler.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		debouncer:   NewDebouncer(DefaultDebounceDuration),
		handler:     handler,
		eventFilter: All,
		names:       make(map[string]bool),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	w.fsWatcher = fsw
	go w.run()
	return w, nil
}

// Add watches path.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}
	return w.fsWatcher.Add(abs)
}

// Close stops the watcher. Pending batches are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	w.debouncer.Cancel()
	err := w.fsWatcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.errorHandler != nil {
				w.errorHandler(err)
			}
		}
	}
}

func (w *Watcher) handleEvent(fsEvent fsnotify.Event) {
	t := eventTypeFromFsnotify(fsEvent.Op)
	if t&w.eventFilter == 0 {
		return
	}
	if len(w.names) > 0 && !w.names[filepath.Base(fsEvent.Name)] {
		return
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending = append(w.pending, Event{Path: fsEvent.Name, Type: t})
	w.mu.Unlock()

	w.debouncer.Trigger(w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(batch) > 0 && w.handler != nil {
		w.handler(batch)
	}
}
