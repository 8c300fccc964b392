package sim

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/aetheronum/controlroom/internal/model"
)

type logTemplate struct {
	level   model.LogLevel
	module  string
	message string
	user    string
}

var logTemplates = []logTemplate{
	{model.LevelInfo, "AI-LAB", "Model training epoch 147 completed", "Dr. Chen"},
	{model.LevelWarning, "QUANTUM", "Qubit coherence below threshold", "Marcus R."},
	{model.LevelError, "SECURITY", "Unauthorized access attempt blocked", "System"},
	{model.LevelInfo, "OS-LAB", "Kernel module loaded successfully", "James W."},
	{model.LevelCritical, "NETWORK", "High latency detected on node 7", "System"},
}

// RandomLog picks one of the canned system log lines and stamps it.
func RandomLog(rng *rand.Rand, now time.Time) model.LogEntry {
	t := logTemplates[rng.IntN(len(logTemplates))]
	return model.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: now,
		Level:     t.level,
		Module:    t.module,
		Message:   t.message,
		User:      t.user,
	}
}

// Event builds an info entry for module, used by the login flow, the
// notebook and the terminal.
func Event(module, message, user string, now time.Time) model.LogEntry {
	return model.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: now,
		Level:     model.LevelInfo,
		Module:    module,
		Message:   message,
		User:      user,
	}
}
