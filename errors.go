package qsim

import "errors"

var (
	ErrInvalidQubitIndex    = errors.New("qubit index out of range")
	ErrInvalidControlTarget = errors.New("cnot control and target must differ")
	ErrMissingControl       = errors.New("cnot requires a control qubit")
	ErrInvalidQubitCount    = errors.New("qubit count out of range")
	ErrGateIndex            = errors.New("gate index out of range")
	ErrUnknownGate          = errors.New("unknown gate kind")

	// ErrDegenerateState is never returned. It marks the log line written when
	// a normalization finds an all-zero vector.
	ErrDegenerateState = errors.New("degenerate state vector")
)
