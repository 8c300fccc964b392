package sim

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/util"
)

// Walk bounds for the dashboard telemetry.
const (
	CPUMin, CPUMax             = 20.0, 90.0
	MemoryMin, MemoryMax       = 30.0, 85.0
	NetworkMin, NetworkMax     = 10.0, 95.0
	UsersMin, UsersMax         = 5, 15
	ProcessesMin, ProcessesMax = 200, 300
)

// NextMetrics takes one random-walk step from m. elapsed advances the
// uptime counter; an uptime that does not parse is left alone.
func NextMetrics(rng *rand.Rand, m model.SystemMetrics, elapsed time.Duration) model.MetricsPatch {
	cpu := clamp(m.CPU+(rng.Float64()-0.5)*10, CPUMin, CPUMax)
	memory := clamp(m.Memory+(rng.Float64()-0.5)*5, MemoryMin, MemoryMax)
	network := clamp(m.Network+(rng.Float64()-0.5)*15, NetworkMin, NetworkMax)
	users := clampInt(m.ActiveUsers+int(math.Floor((rng.Float64()-0.5)*3)), UsersMin, UsersMax)
	procs := clampInt(m.RunningProcesses+int(math.Floor((rng.Float64()-0.5)*10)), ProcessesMin, ProcessesMax)

	p := model.MetricsPatch{
		CPU:              &cpu,
		Memory:           &memory,
		Network:          &network,
		ActiveUsers:      &users,
		RunningProcesses: &procs,
	}
	if up, err := util.ParseUptime(m.Uptime); err == nil && elapsed > 0 {
		s := util.FormatUptime(up + elapsed)
		p.Uptime = &s
	}
	return p
}

// Severity buckets a utilisation percentage for colouring: 0 normal,
// 1 elevated (>60), 2 high (>80).
func Severity(pct float64) int {
	switch {
	case pct > 80:
		return 2
	case pct > 60:
		return 1
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
