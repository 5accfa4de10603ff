// statevector.go
package qsim

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/floats"
)

/*
StateVector holds the real amplitudes of an n-qubit register over its 2^n
basis states. Bit k of a basis index is the classical value of qubit k, so
qubit 0 is the least significant bit.

The phase vector is allocated alongside the amplitudes and read by the Bloch
projection, but no gate ever writes to it.
*/
type StateVector struct {
	qubits     int
	amplitudes []float64
	phases     []float64
	rng        *rand.Rand
}

// NewStateVector allocates a register of the given size in the |0...0⟩ state.
func NewStateVector(qubits int, options ...StateVectorOption) *StateVector {
	if qubits < 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidQubitCount, qubits))
	}

	dim := 1 << qubits
	sv := &StateVector{
		qubits:     qubits,
		amplitudes: make([]float64, dim),
		phases:     make([]float64, dim),
	}
	sv.amplitudes[0] = 1

	for _, option := range options {
		option(sv)
	}

	if sv.rng == nil {
		sv.rng = newRand(0)
	}

	return sv
}

func (sv *StateVector) Qubits() int { return sv.qubits }

func (sv *StateVector) Dim() int { return len(sv.amplitudes) }

// mask returns the basis-index bit for qubit, panicking on an index outside
// the register.
func (sv *StateVector) mask(qubit int) int {
	if qubit < 0 || qubit >= sv.qubits {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidQubitIndex, qubit, sv.qubits))
	}
	return 1 << qubit
}

/*
Hadamard applies H = 1/√2 [[1, 1], [1, -1]] to qubit. Each output pair depends
on both original values of the pair, so results go into a fresh buffer.
*/
func (sv *StateVector) Hadamard(qubit int) {
	bit := sv.mask(qubit)
	out := make([]float64, len(sv.amplitudes))

	for i := range sv.amplitudes {
		if i&bit != 0 {
			continue
		}

		a, b := sv.amplitudes[i], sv.amplitudes[i|bit]
		out[i] = (a + b) / math.Sqrt2
		out[i|bit] = (a - b) / math.Sqrt2
	}

	sv.amplitudes = out
	sv.Normalize()
}

func (sv *StateVector) PauliX(qubit int) {
	bit := sv.mask(qubit)

	for i := range sv.amplitudes {
		if i&bit != 0 {
			j := i &^ bit
			sv.amplitudes[i], sv.amplitudes[j] = sv.amplitudes[j], sv.amplitudes[i]
		}
	}
}

// PauliY is the real-valued stand-in for Y: swap the pair as X does, then
// negate the amplitude that landed on the bit-set index.
func (sv *StateVector) PauliY(qubit int) {
	bit := sv.mask(qubit)

	for i := range sv.amplitudes {
		if i&bit != 0 {
			j := i &^ bit
			sv.amplitudes[i], sv.amplitudes[j] = sv.amplitudes[j], sv.amplitudes[i]
			sv.amplitudes[i] = -sv.amplitudes[i]
		}
	}
}

func (sv *StateVector) PauliZ(qubit int) {
	bit := sv.mask(qubit)

	for i := range sv.amplitudes {
		if i&bit != 0 {
			sv.amplitudes[i] = -sv.amplitudes[i]
		}
	}
}

// CNOT flips target on every basis state where control is set. Only the
// target-clear member of each pair is visited so every pair swaps once.
func (sv *StateVector) CNOT(control, target int) {
	controlBit := sv.mask(control)
	targetBit := sv.mask(target)

	if control == target {
		panic(fmt.Errorf("%w: both %d", ErrInvalidControlTarget, control))
	}

	for i := range sv.amplitudes {
		if i&controlBit != 0 && i&targetBit == 0 {
			j := i | targetBit
			sv.amplitudes[i], sv.amplitudes[j] = sv.amplitudes[j], sv.amplitudes[i]
		}
	}
}

/*
Measure observes qubit, collapsing the register onto the outcome and
renormalizing the surviving amplitudes. Later measurements see the collapsed
state, which is what makes sequential measurement of entangled qubits agree.
*/
func (sv *StateVector) Measure(qubit int) int {
	bit := sv.mask(qubit)

	var p0, p1 float64
	for i, amplitude := range sv.amplitudes {
		if i&bit != 0 {
			p1 += amplitude * amplitude
		} else {
			p0 += amplitude * amplitude
		}
	}

	outcome := 0
	if sv.rng.Float64() < p1 {
		outcome = 1
	}

	// Rounding can leave u < p1 with p0 == 0, or the reverse.
	if outcome == 0 && p0 == 0 {
		outcome = 1
	} else if outcome == 1 && p1 == 0 {
		outcome = 0
	}

	for i := range sv.amplitudes {
		if (i&bit != 0) != (outcome == 1) {
			sv.amplitudes[i] = 0
		}
	}

	sv.Normalize()
	return outcome
}

// Normalize rescales the amplitudes to unit L2 norm. An all-zero vector is
// left untouched.
func (sv *StateVector) Normalize() {
	norm := floats.Norm(sv.amplitudes, 2)

	if norm == 0 {
		errnie.Info("StateVector.Normalize - %v on %d qubits, skipping", ErrDegenerateState, sv.qubits)
		return
	}

	floats.Scale(1/norm, sv.amplitudes)
}

func (sv *StateVector) Norm() float64 {
	return floats.Norm(sv.amplitudes, 2)
}

// Probabilities returns the squared amplitude of every basis state.
func (sv *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(sv.amplitudes))
	copy(probs, sv.amplitudes)
	floats.Mul(probs, sv.amplitudes)
	return probs
}

// Marginal returns the probability of reading 0 and 1 on qubit.
func (sv *StateVector) Marginal(qubit int) (p0, p1 float64) {
	bit := sv.mask(qubit)
	probs := sv.Probabilities()

	for i, p := range probs {
		if i&bit != 0 {
			p1 += p
		}
	}

	return floats.Sum(probs) - p1, p1
}

func (sv *StateVector) Amplitudes() []float64 {
	out := make([]float64, len(sv.amplitudes))
	copy(out, sv.amplitudes)
	return out
}

func (sv *StateVector) Phases() []float64 {
	out := make([]float64, len(sv.phases))
	copy(out, sv.phases)
	return out
}

// Clone deep-copies the buffers. The clone draws from the same random source.
func (sv *StateVector) Clone() *StateVector {
	return &StateVector{
		qubits:     sv.qubits,
		amplitudes: sv.Amplitudes(),
		phases:     sv.Phases(),
		rng:        sv.rng,
	}
}
