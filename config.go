package qsim

import "fmt"

/*
Config holds the register bounds a CircuitProgram enforces on qubit-count
changes, the starting qubit count, and the seed for measurement draws.
A zero Seed draws a fresh seed per program.
*/
type Config struct {
	Qubits    int
	MinQubits int
	MaxQubits int
	Seed      uint64
}

func NewConfig() *Config {
	return &Config{
		Qubits:    3,
		MinQubits: 1,
		MaxQubits: 5,
	}
}

func (config *Config) validate() error {
	if config.MinQubits < 1 || config.MaxQubits < config.MinQubits {
		return fmt.Errorf("%w: bounds [%d, %d]", ErrInvalidQubitCount, config.MinQubits, config.MaxQubits)
	}

	if config.Qubits < config.MinQubits || config.Qubits > config.MaxQubits {
		return fmt.Errorf(
			"%w: %d not in [%d, %d]",
			ErrInvalidQubitCount, config.Qubits, config.MinQubits, config.MaxQubits,
		)
	}

	return nil
}
