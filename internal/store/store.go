package store

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Observer is notified after every dispatched action with the action and
// the state it produced.
type Observer func(a Action, s State)

// UnsubscribeFunc removes an observer. Calling it more than once is safe.
type UnsubscribeFunc func()

type observerEntry struct {
	id uint64
	fn Observer
}

// Store is the injectable state container. All mutation funnels through
// Dispatch, one action at a time.
type Store struct {
	mu        sync.Mutex
	state     State
	observers []observerEntry
	nextID    atomic.Uint64
	logger    *slog.Logger
	closed    bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs every dispatch at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a store holding initial.
func New(initial State, opts ...Option) *Store {
	s := &Store{
		state:  initial,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces each action in order. Observers run synchronously after
// each reduction and see exactly the state that reduction produced. A closed
// store ignores dispatches.
func (s *Store) Dispatch(actions ...Action) {
	for _, a := range actions {
		if a == nil {
			continue
		}
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		next := Reduce(s.state, a)
		s.state = next
		observers := append([]observerEntry(nil), s.observers...)
		s.mu.Unlock()

		s.logger.Debug("dispatch", "action", a.ActionType())
		for _, o := range observers {
			o.fn(a, next)
		}
	}
}

// Subscribe registers fn and returns the function that removes it.
func (s *Store) Subscribe(fn Observer) UnsubscribeFunc {
	id := s.nextID.Add(1)
	s.mu.Lock()
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// SubscriberCount returns the number of registered observers.
func (s *Store) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// Close drops all observers and makes further dispatches no-ops.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.observers = nil
}
