package terminal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/store"
)

// MaxRecall bounds the input recall list.
const MaxRecall = 50

// LogModule tags log entries written by the console.
const LogModule = "TERMINAL"

// Result is what one submitted line produced.
type Result struct {
	Command model.TerminalCommand
	Log     model.LogEntry
	Cleared bool
}

// Actions returns the store actions that record the result.
func (r Result) Actions() []store.Action {
	return []store.Action{
		store.AddTerminalCommand{Command: r.Command},
		store.AddLog{Entry: r.Log},
	}
}

// Console is the interactive terminal: scrollback, recall and submission.
// It is not safe for concurrent use.
type Console struct {
	lines  []string
	recall []string
	index  int
	now    func() time.Time
}

// NewConsole returns a console showing the banner.
func NewConsole() *Console {
	return &Console{
		lines: []string{BannerTitle, BannerConnect, ""},
		index: -1,
		now:   time.Now,
	}
}

// Lines returns the scrollback, oldest first.
func (c *Console) Lines() []string {
	return append([]string(nil), c.lines...)
}

// Recall returns the submitted inputs, newest first.
func (c *Console) Recall() []string {
	return append([]string(nil), c.recall...)
}

// Submit runs one line of input on behalf of user. Blank input is ignored
// and reports false.
func (c *Console) Submit(input, user string) (Result, bool) {
	if strings.TrimSpace(input) == "" {
		return Result{}, false
	}

	output, cleared := Resolve(input)
	now := c.now()
	if user == "" {
		user = "Unknown"
	}

	res := Result{
		Command: model.TerminalCommand{
			Command:   input,
			Output:    output,
			Timestamp: now,
			User:      user,
		},
		Log: model.LogEntry{
			ID:        uuid.NewString(),
			Timestamp: now,
			Level:     model.LevelInfo,
			Module:    LogModule,
			Message:   "Command executed: " + input,
			User:      user,
		},
		Cleared: cleared,
	}

	if cleared {
		c.lines = []string{BannerTitle, ""}
	} else {
		c.lines = append(c.lines, "$ "+input, output, "")
	}

	c.recall = append([]string{input}, c.recall...)
	if len(c.recall) > MaxRecall {
		c.recall = c.recall[:MaxRecall]
	}
	c.index = -1
	return res, true
}

// Previous steps one entry back in recall. It reports false at the oldest
// entry, where the caller keeps its current input.
func (c *Console) Previous() (string, bool) {
	if c.index >= len(c.recall)-1 {
		return "", false
	}
	c.index++
	return c.recall[c.index], true
}

// Next steps one entry forward in recall. Stepping past the newest entry
// yields an empty line. It reports false when recall is not active.
func (c *Console) Next() (string, bool) {
	if c.index < 0 {
		return "", false
	}
	c.index--
	if c.index == -1 {
		return "", true
	}
	return c.recall[c.index], true
}
