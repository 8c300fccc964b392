package sim

import (
	"math"
	"math/rand/v2"
)

// Gates is the circuit builder's palette.
var Gates = []string{"H", "X", "Y", "Z", "CNOT", "T", "S", "RX", "RY", "RZ"}

// Qubit register bounds.
const (
	DefaultQubits = 16
	MinQubits     = 2
	MaxQubits     = 32

	StartCoherence = 125.7
	StartFidelity  = 99.8
	FidelityFloor  = 95.0
)

// Circuit is the quantum lab's working circuit and the device figures it
// degrades when run.
type Circuit struct {
	Qubits    int
	Gates     []string
	Coherence float64
	Fidelity  float64
}

// NewCircuit returns an empty circuit on a fresh device.
func NewCircuit() Circuit {
	return Circuit{Qubits: DefaultQubits, Coherence: StartCoherence, Fidelity: StartFidelity}
}

// Add appends gate to the sequence. Gates outside the palette are ignored.
func (c *Circuit) Add(gate string) bool {
	for _, g := range Gates {
		if g == gate {
			c.Gates = append(c.Gates, gate)
			return true
		}
	}
	return false
}

// Clear empties the gate sequence.
func (c *Circuit) Clear() {
	c.Gates = nil
}

// Run executes the circuit: coherence drops by up to 5μs and fidelity by up
// to 0.5%, never below FidelityFloor. Coherence bottoms out at zero.
func (c *Circuit) Run(rng *rand.Rand) {
	c.Coherence = math.Max(0, c.Coherence-rng.Float64()*5)
	c.Fidelity = math.Max(FidelityFloor, c.Fidelity-rng.Float64()*0.5)
}

// Resize sets the register width within [MinQubits, MaxQubits].
func (c *Circuit) Resize(n int) {
	c.Qubits = max(MinQubits, min(MaxQubits, n))
}

// Qubit is one sampled register cell.
type Qubit struct {
	ID          int
	One         bool
	Probability float64
	// Entangled is the partner index, or -1.
	Entangled int
}

// Ket renders the basis state.
func (q Qubit) Ket() string {
	if q.One {
		return "|1⟩"
	}
	return "|0⟩"
}

// SampleQubits draws a fresh random snapshot of n qubits. Roughly three in
// ten are shown entangled with a random partner.
func SampleQubits(rng *rand.Rand, n int) []Qubit {
	qs := make([]Qubit, n)
	for i := range qs {
		qs[i] = Qubit{
			ID:          i,
			One:         rng.Float64() <= 0.5,
			Probability: rng.Float64(),
			Entangled:   -1,
		}
		if rng.Float64() > 0.7 {
			qs[i].Entangled = rng.IntN(n)
		}
	}
	return qs
}
