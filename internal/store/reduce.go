package store

import "github.com/aetheronum/controlroom/internal/model"

// Reduce computes the state that follows s after applying a. It is total:
// unknown actions and unknown ids leave the state unchanged. Reduce never
// writes to slices owned by s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Login:
		u := a.User
		s.User = &u
		s.IsAuthenticated = true
	case Logout:
		s.User = nil
		s.IsAuthenticated = false
		s.Windows = nil
	case AddLog:
		s.Logs = prependCapped(s.Logs, a.Entry, MaxLogs)
	case UpdateMetrics:
		s.Metrics = s.Metrics.Apply(a.Patch)
	case AddNote:
		s.Notes = prependCapped(s.Notes, a.Note, 0)
	case UpdateNote:
		s.Notes = patchByID(s.Notes, a.ID, func(n model.Note) string { return n.ID },
			func(n model.Note) model.Note { return n.Apply(a.Patch) })
	case AddWindow:
		windows := make([]model.WindowState, 0, len(s.Windows)+1)
		windows = append(windows, s.Windows...)
		s.Windows = append(windows, a.Window)
	case UpdateWindow:
		s.Windows = patchByID(s.Windows, a.ID, func(w model.WindowState) string { return w.ID },
			func(w model.WindowState) model.WindowState { return w.Apply(a.Patch) })
	case RemoveWindow:
		s.Windows = removeWindow(s.Windows, a.ID)
	case AddTerminalCommand:
		s.TerminalHistory = prependCapped(s.TerminalHistory, a.Command, MaxTerminalHistory)
	case UpdateProject:
		s.Projects = patchByID(s.Projects, a.ID, func(p model.Project) string { return p.ID },
			func(p model.Project) model.Project { return p.Apply(a.Patch) })
	}
	return s
}

// prependCapped returns a fresh slice with v in front of items, truncated to
// max elements. max <= 0 means unbounded.
func prependCapped[T any](items []T, v T, max int) []T {
	n := len(items) + 1
	if max > 0 && n > max {
		n = max
	}
	out := make([]T, 0, n)
	out = append(out, v)
	return append(out, items[:n-1]...)
}

// patchByID returns items with the element whose key is id replaced by
// fn(element). When no element matches, items itself is returned so callers
// observe an unchanged snapshot.
func patchByID[T any](items []T, id string, key func(T) string, fn func(T) T) []T {
	idx := -1
	for i, it := range items {
		if key(it) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items
	}
	out := append([]T(nil), items...)
	out[idx] = fn(out[idx])
	return out
}

func removeWindow(windows []model.WindowState, id string) []model.WindowState {
	out := make([]model.WindowState, 0, len(windows))
	for _, w := range windows {
		if w.ID != id {
			out = append(out, w)
		}
	}
	if len(out) == len(windows) {
		return windows
	}
	return out
}
