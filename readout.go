package qsim

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// BasisLabel renders a basis index as a ket of zero-padded binary, highest
// qubit first: BasisLabel(2, 3) is "|010⟩".
func BasisLabel(index, qubits int) string {
	bits := strconv.FormatInt(int64(index), 2)

	if pad := qubits - len(bits); pad > 0 {
		bits = strings.Repeat("0", pad) + bits
	}

	return "|" + bits + "⟩"
}

// MostLikely returns the basis state with the highest probability. Ties go to
// the lowest index.
func MostLikely(sv *StateVector) (index int, probability float64) {
	probs := sv.Probabilities()
	index = floats.MaxIdx(probs)
	return index, probs[index]
}

// FormatOutcomes joins measurement results in qubit order, "011" for
// []int{0, 1, 1}.
func FormatOutcomes(outcomes []int) string {
	var builder strings.Builder

	for _, outcome := range outcomes {
		builder.WriteString(strconv.Itoa(outcome))
	}

	return builder.String()
}

// LaneGate is a gate drawn on a qubit lane together with its list index, the
// index RemoveGate takes.
type LaneGate struct {
	Index int
	GateOp
}

// Lanes groups the gates by target qubit, preserving list order in each lane.
func (program *CircuitProgram) Lanes() [][]LaneGate {
	lanes := make([][]LaneGate, program.qubits)

	for index, op := range program.gates {
		lanes[op.Qubit] = append(lanes[op.Qubit], LaneGate{Index: index, GateOp: op})
	}

	return lanes
}
