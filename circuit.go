package qsim

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/theapemachine/errnie"
)

// Outcome records a Measure gate applied while running the program.
type Outcome struct {
	Gate   int
	Qubit  int
	Result int
}

/*
CircuitProgram is an ordered, editable list of gates bound to a register.
Run and Step apply the gates to whichever StateVector the program currently
holds; Reset and qubit-count changes replace it with a fresh one.

A program is not safe for concurrent use. Run independent circuits on
independent programs.
*/
type CircuitProgram struct {
	config   *Config
	qubits   int
	state    *StateVector
	gates    []GateOp
	cursor   int
	outcomes []Outcome
	rng      *rand.Rand
	metrics  *Metrics
}

// NewCircuitProgram builds an empty program on a |0...0⟩ register sized by
// config.Qubits. A nil config uses NewConfig.
func NewCircuitProgram(config *Config) (*CircuitProgram, error) {
	if config == nil {
		config = NewConfig()
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	errnie.Info(
		"NewCircuitProgram - qubits %d, bounds [%d, %d]",
		config.Qubits,
		config.MinQubits,
		config.MaxQubits,
	)

	program := &CircuitProgram{
		config:  config,
		qubits:  config.Qubits,
		rng:     newRand(config.Seed),
		metrics: newMetrics(),
	}
	program.state = program.newState()

	return program, nil
}

func (program *CircuitProgram) newState() *StateVector {
	return NewStateVector(program.qubits, WithRand(program.rng))
}

func (program *CircuitProgram) checkQubit(qubit int) error {
	if qubit < 0 || qubit >= program.qubits {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidQubitIndex, qubit, program.qubits)
	}
	return nil
}

/*
AddGate appends a gate on qubit. CNOT takes its control as the optional
trailing argument and requires it; every other kind ignores it.
*/
func (program *CircuitProgram) AddGate(kind GateKind, qubit int, control ...int) error {
	if kind < Hadamard || kind > Measure {
		return fmt.Errorf("%w: %d", ErrUnknownGate, int(kind))
	}

	if err := program.checkQubit(qubit); err != nil {
		return err
	}

	op := GateOp{
		Kind:    kind,
		Qubit:   qubit,
		Control: NoControl,
		Column:  len(program.gates),
	}

	if kind == CNOT {
		if len(control) == 0 {
			return ErrMissingControl
		}

		if err := program.checkQubit(control[0]); err != nil {
			return err
		}

		if control[0] == qubit {
			return fmt.Errorf("%w: both %d", ErrInvalidControlTarget, qubit)
		}

		op.Control = control[0]
	}

	program.gates = append(program.gates, op)
	return nil
}

// RemoveGate deletes the gate at list index. Gates after it shift down one
// position. Removing an already applied gate pulls the cursor back so the
// next unapplied gate stays the same.
func (program *CircuitProgram) RemoveGate(index int) error {
	if index < 0 || index >= len(program.gates) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrGateIndex, index, len(program.gates))
	}

	program.gates = slices.Delete(program.gates, index, index+1)

	if index < program.cursor {
		program.cursor--
	}

	return nil
}

func (program *CircuitProgram) apply(index int) {
	op := program.gates[index]

	if outcome, measured := op.apply(program.state); measured {
		program.outcomes = append(program.outcomes, Outcome{
			Gate:   index,
			Qubit:  op.Qubit,
			Result: outcome,
		})
	}

	program.metrics.recordGate(op.Kind)
}

// Run applies every gate in list order to the current state. It neither
// resets the state first nor moves the step cursor.
func (program *CircuitProgram) Run() {
	for index := range program.gates {
		program.apply(index)
	}
}

// Step applies the next unapplied gate and advances the cursor. It returns
// false, doing nothing, once the cursor has reached the end.
func (program *CircuitProgram) Step() bool {
	if program.cursor >= len(program.gates) {
		return false
	}

	program.apply(program.cursor)
	program.cursor++
	return true
}

// Reset replaces the state with a fresh |0...0⟩ register and rewinds the
// cursor. The gate list is kept.
func (program *CircuitProgram) Reset() {
	program.state = program.newState()
	program.cursor = 0
	program.outcomes = nil
	program.metrics.Resets++

	errnie.Info("CircuitProgram.Reset - qubits %d, gates %d", program.qubits, len(program.gates))
}

/*
MeasureAll measures qubits 0 through n-1 in order. Each measurement collapses
the register before the next one is drawn, so outcomes on entangled qubits
are correlated.
*/
func (program *CircuitProgram) MeasureAll() []int {
	outcomes := make([]int, program.qubits)

	for qubit := range outcomes {
		outcomes[qubit] = program.state.Measure(qubit)
	}

	program.metrics.recordMeasureAll(outcomes)
	errnie.Info("CircuitProgram.MeasureAll - %s", FormatOutcomes(outcomes))

	return outcomes
}

/*
SetQubits resizes the register. The state is reallocated at |0...0⟩ and the
cursor rewinds. When shrinking, every gate whose target or control falls
outside the new register is dropped; growing keeps all gates.
*/
func (program *CircuitProgram) SetQubits(qubits int) error {
	if qubits < program.config.MinQubits || qubits > program.config.MaxQubits {
		return fmt.Errorf(
			"%w: %d not in [%d, %d]",
			ErrInvalidQubitCount, qubits, program.config.MinQubits, program.config.MaxQubits,
		)
	}

	before := len(program.gates)

	if qubits < program.qubits {
		program.gates = slices.DeleteFunc(program.gates, func(op GateOp) bool {
			return op.Qubit >= qubits || (op.Kind == CNOT && op.Control >= qubits)
		})
	}

	program.qubits = qubits
	program.state = program.newState()
	program.cursor = 0
	program.outcomes = nil
	program.metrics.Reallocations++

	errnie.Info(
		"CircuitProgram.SetQubits - qubits %d, dropped %d gates",
		qubits,
		before-len(program.gates),
	)

	return nil
}

func (program *CircuitProgram) AddQubit() error {
	return program.SetQubits(program.qubits + 1)
}

func (program *CircuitProgram) RemoveQubit() error {
	return program.SetQubits(program.qubits - 1)
}

func (program *CircuitProgram) Qubits() int { return program.qubits }

func (program *CircuitProgram) Cursor() int { return program.cursor }

// State returns the register the program currently drives.
func (program *CircuitProgram) State() *StateVector { return program.state }

func (program *CircuitProgram) Probabilities() []float64 {
	return program.state.Probabilities()
}

func (program *CircuitProgram) Gates() []GateOp {
	return slices.Clone(program.gates)
}

// Outcomes lists the Measure gates applied since the last reset.
func (program *CircuitProgram) Outcomes() []Outcome {
	return slices.Clone(program.outcomes)
}

func (program *CircuitProgram) Metrics() *Metrics { return program.metrics }
