package dashboard

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aetheronum/controlroom/internal/config"
)

// Tick overrides, in whole seconds. They win over the config file.
const (
	EnvMetricsTick  = "CONTROLROOM_METRICS_SECS"
	EnvLogsTick     = "CONTROLROOM_LOGS_SECS"
	EnvTrainingTick = "CONTROLROOM_TRAINING_SECS"
	EnvScanDelay    = "CONTROLROOM_SCAN_SECS"
)

// applyEnvOverrides rewrites cfg's tick settings from the environment.
func applyEnvOverrides(cfg *config.Config) {
	if cfg == nil {
		return
	}
	for name, field := range map[string]*string{
		EnvMetricsTick:  &cfg.Ticks.Metrics,
		EnvLogsTick:     &cfg.Ticks.Logs,
		EnvTrainingTick: &cfg.Ticks.Training,
		EnvScanDelay:    &cfg.Ticks.Scan,
	} {
		if seconds, ok := envPositiveInt(name); ok {
			*field = fmt.Sprintf("%ds", seconds)
		}
	}
}

func envPositiveInt(name string) (int, bool) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return 0, false
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}

	return parsed, true
}
