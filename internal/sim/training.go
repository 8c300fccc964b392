package sim

import (
	"math"
	"math/rand/v2"
)

// Training run defaults.
const (
	TotalEpochs   = 500
	StartEpoch    = 147
	StartLoss     = 0.0234
	MinLoss       = 0.001
	ModelAccuracy = 94.2
)

// TrainingStatus is the state of the simulated training run.
type TrainingStatus string

const (
	TrainingIdle    TrainingStatus = "idle"
	TrainingRunning TrainingStatus = "training"
	TrainingPaused  TrainingStatus = "paused"
)

// Training is the AI lab's simulated run. It starts in the running state.
type Training struct {
	Status TrainingStatus
	Epoch  int
	Loss   float64
}

// NewTraining returns the run as the lab first shows it.
func NewTraining() Training {
	return Training{Status: TrainingRunning, Epoch: StartEpoch, Loss: StartLoss}
}

// Toggle flips between training and paused.
func (t *Training) Toggle() {
	if t.Status == TrainingRunning {
		t.Status = TrainingPaused
	} else {
		t.Status = TrainingRunning
	}
}

// Running reports whether epochs should advance.
func (t Training) Running() bool {
	return t.Status == TrainingRunning
}

// Step advances one epoch. The loss drifts down with noise and never drops
// below MinLoss.
func (t *Training) Step(rng *rand.Rand) {
	t.Epoch++
	t.Loss = math.Max(MinLoss, t.Loss-0.0001+(rng.Float64()-0.5)*0.001)
}

// Progress is the completed fraction, capped at 1.
func (t Training) Progress() float64 {
	return math.Min(1, float64(t.Epoch)/TotalEpochs)
}
