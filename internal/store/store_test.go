package store

import (
	"testing"

	"github.com/aetheronum/controlroom/internal/model"
)

func TestStoreDispatchUpdatesState(t *testing.T) {
	s := New(InitialState(nil))
	s.Dispatch(Login{User: testUser(2)}, AddLog{Entry: model.LogEntry{ID: "1"}})

	st := s.State()
	if !st.IsAuthenticated {
		t.Error("expected authenticated state")
	}
	if len(st.Logs) != 1 {
		t.Errorf("len(Logs) = %d, want 1", len(st.Logs))
	}
}

func TestStoreObserversSeeEachSnapshot(t *testing.T) {
	s := New(InitialState(nil))

	var seen []string
	var lens []int
	unsub := s.Subscribe(func(a Action, st State) {
		seen = append(seen, a.ActionType())
		lens = append(lens, len(st.Logs))
	})

	s.Dispatch(AddLog{}, AddLog{})
	if len(seen) != 2 || seen[0] != "ADD_LOG" {
		t.Fatalf("observer saw %v", seen)
	}
	if lens[0] != 1 || lens[1] != 2 {
		t.Errorf("observer snapshots had log lengths %v, want [1 2]", lens)
	}

	unsub()
	unsub()
	s.Dispatch(AddLog{})
	if len(seen) != 2 {
		t.Errorf("observer called after unsubscribe: %v", seen)
	}
}

func TestStoreSubscribeOrder(t *testing.T) {
	s := New(InitialState(nil))
	var order []int
	s.Subscribe(func(Action, State) { order = append(order, 1) })
	s.Subscribe(func(Action, State) { order = append(order, 2) })
	s.Dispatch(Logout{})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestStoreObserverMayDispatch(t *testing.T) {
	s := New(InitialState(nil))
	s.Subscribe(func(a Action, st State) {
		if _, ok := a.(Login); ok {
			s.Dispatch(AddLog{Entry: model.LogEntry{Module: "AUTH"}})
		}
	})
	s.Dispatch(Login{User: testUser(1)})
	if got := len(s.State().Logs); got != 1 {
		t.Errorf("len(Logs) = %d, want 1", got)
	}
}

func TestStoreClose(t *testing.T) {
	s := New(InitialState(nil))
	s.Subscribe(func(Action, State) {})
	s.Close()
	if s.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d after Close", s.SubscriberCount())
	}
	s.Dispatch(Login{User: testUser(1)})
	if s.State().IsAuthenticated {
		t.Error("closed store accepted a dispatch")
	}
}

func TestStoreIgnoresNilAction(t *testing.T) {
	s := New(InitialState(nil))
	s.Dispatch(nil)
	if s.State().IsAuthenticated {
		t.Error("nil action changed state")
	}
}
