package qsim

import (
	"fmt"
	"strings"
)

// GateKind identifies one of the gates a circuit can hold.
type GateKind int

const (
	Hadamard GateKind = iota
	PauliX
	PauliY
	PauliZ
	CNOT
	Measure
)

// NoControl is the Control value of every gate other than CNOT.
const NoControl = -1

var gateSymbols = [...]string{
	Hadamard: "H",
	PauliX:   "X",
	PauliY:   "Y",
	PauliZ:   "Z",
	CNOT:     "CNOT",
	Measure:  "M",
}

func (kind GateKind) String() string {
	if kind < 0 || int(kind) >= len(gateSymbols) {
		return fmt.Sprintf("GateKind(%d)", int(kind))
	}
	return gateSymbols[kind]
}

// ParseGateKind maps an editor symbol (H, X, Y, Z, CNOT, M) to its kind.
// Matching ignores case; "CX" is accepted for CNOT.
func ParseGateKind(symbol string) (GateKind, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if symbol == "CX" {
		return CNOT, nil
	}

	for kind, s := range gateSymbols {
		if s == symbol {
			return GateKind(kind), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownGate, symbol)
}

/*
GateOp is a gate placed on the circuit. Qubit is the target lane; Control is
only meaningful for CNOT. Column records the list length when the gate was
appended and is kept for diagram placement; the gate's program position is
always its current list index.
*/
type GateOp struct {
	Kind    GateKind
	Qubit   int
	Control int
	Column  int
}

// References reports whether the gate touches qubit as target or control.
func (op GateOp) References(qubit int) bool {
	return op.Qubit == qubit || (op.Kind == CNOT && op.Control == qubit)
}

func (op GateOp) String() string {
	if op.Kind == CNOT {
		return fmt.Sprintf("CNOT(q%d -> q%d)", op.Control, op.Qubit)
	}
	return fmt.Sprintf("%s(q%d)", op.Kind, op.Qubit)
}

// apply runs the gate on sv. The bool result is true when the gate was a
// measurement, in which case outcome holds the observed bit.
func (op GateOp) apply(sv *StateVector) (outcome int, measured bool) {
	switch op.Kind {
	case Hadamard:
		sv.Hadamard(op.Qubit)
	case PauliX:
		sv.PauliX(op.Qubit)
	case PauliY:
		sv.PauliY(op.Qubit)
	case PauliZ:
		sv.PauliZ(op.Qubit)
	case CNOT:
		sv.CNOT(op.Control, op.Qubit)
	case Measure:
		return sv.Measure(op.Qubit), true
	default:
		panic(fmt.Errorf("%w: %v", ErrUnknownGate, op.Kind))
	}

	return 0, false
}
