// Package sim drives the control room's simulated telemetry: periodic tick
// scheduling plus the random walks and canned data behind each lab view.
package sim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Task names.
const (
	TaskMetrics  = "metrics"
	TaskLogs     = "logs"
	TaskTraining = "training"
)

// TickMsg is delivered when a scheduled task fires.
type TickMsg struct {
	Task string
	Gen  uint64
	At   time.Time
}

type task struct {
	gen      uint64
	interval time.Duration
	active   bool
}

// Scheduler runs named periodic tasks on the bubbletea loop. Each Start or
// Cancel bumps the task's generation; ticks carrying an older generation
// are dropped, so a cancelled task never fires again even when a tick is
// already in flight. It is not safe for concurrent use.
type Scheduler struct {
	tasks map[string]*task
	gen   uint64
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[string]*task)}
}

// Start (re)arms task name to fire every interval. A running task of the
// same name is superseded.
func (s *Scheduler) Start(name string, interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	t := s.task(name)
	s.gen++
	t.gen = s.gen
	t.interval = interval
	t.active = true
	return tick(name, t.gen, interval)
}

// Cancel stops task name. Unknown names are ignored.
func (s *Scheduler) Cancel(name string) {
	t, ok := s.tasks[name]
	if !ok || !t.active {
		return
	}
	s.gen++
	t.gen = s.gen
	t.active = false
}

// CancelAll stops every task.
func (s *Scheduler) CancelAll() {
	for name := range s.tasks {
		s.Cancel(name)
	}
}

// Active reports whether task name is running.
func (s *Scheduler) Active(name string) bool {
	t, ok := s.tasks[name]
	return ok && t.active
}

// SetInterval changes the period of task name. It takes effect when the
// in-flight tick re-arms.
func (s *Scheduler) SetInterval(name string, interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.task(name).interval = interval
}

// Interval returns the configured period of task name.
func (s *Scheduler) Interval(name string) time.Duration {
	if t, ok := s.tasks[name]; ok {
		return t.interval
	}
	return 0
}

// Accept reports whether msg belongs to a live task. For a live task it
// also returns the command that schedules the next tick.
func (s *Scheduler) Accept(msg TickMsg) (tea.Cmd, bool) {
	t, ok := s.tasks[msg.Task]
	if !ok || !t.active || t.gen != msg.Gen {
		return nil, false
	}
	return tick(msg.Task, t.gen, t.interval), true
}

func (s *Scheduler) task(name string) *task {
	t, ok := s.tasks[name]
	if !ok {
		t = &task{}
		s.tasks[name] = t
	}
	return t
}

func tick(name string, gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return TickMsg{Task: name, Gen: gen, At: at}
	})
}
