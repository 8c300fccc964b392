package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNewDebouncerWindow(t *testing.T) {
	tests := []struct {
		wait time.Duration
		want time.Duration
	}{
		{0, DefaultDebounceDuration},
		{-time.Second, DefaultDebounceDuration},
		{500 * time.Millisecond, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := NewDebouncer(tt.wait).Duration(); got != tt.want {
			t.Errorf("NewDebouncer(%v).Duration() = %v, want %v", tt.wait, got, tt.want)
		}
	}
}

func TestDebouncerRunsLatestCallbackOnce(t *testing.T) {
	var last, calls atomic.Int32
	d := NewDebouncer(80 * time.Millisecond)

	for i := int32(1); i <= 5; i++ {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(i)
		})
		time.Sleep(10 * time.Millisecond)
	}
	if !d.Pending() {
		t.Error("nothing pending inside the window")
	}
	time.Sleep(200 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
	if got := last.Load(); got != 5 {
		t.Errorf("ran callback %d, want the last one", got)
	}
	if d.Pending() {
		t.Error("still pending after firing")
	}
}

func TestDebouncerCancel(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(80 * time.Millisecond)

	d.Trigger(func() { calls.Add(1) })
	time.Sleep(20 * time.Millisecond)
	d.Cancel()
	if d.Pending() {
		t.Error("pending after Cancel")
	}
	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("callback ran %d times after Cancel, want 0", got)
	}
	d.Cancel()

	d.Trigger(func() { calls.Add(1) })
	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("Trigger after Cancel ran %d times, want 1", got)
	}
}
