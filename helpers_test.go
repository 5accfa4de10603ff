package qsim

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/davecgh/go-spew/spew"
)

const tolerance = 1e-9

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// shouldApproximate compares two []float64 element by element within
// tolerance.
func shouldApproximate(actual any, expected ...any) string {
	got, ok := actual.([]float64)
	if !ok {
		return fmt.Sprintf("expected a []float64, got %T", actual)
	}

	want, ok := expected[0].([]float64)
	if !ok {
		return fmt.Sprintf("expected a []float64 to compare against, got %T", expected[0])
	}

	if len(got) != len(want) {
		return fmt.Sprintf("expected length %d, got %d\n%s", len(want), len(got), spew.Sdump(got))
	}

	for i := range got {
		if math.Abs(got[i]-want[i]) > tolerance {
			return fmt.Sprintf("index %d: expected %v, got %v\n%s", i, want[i], got[i], spew.Sdump(got))
		}
	}

	return ""
}

// contractViolation runs fn and returns the error it panicked with.
func contractViolation(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()

	fn()
	return nil
}

func sumOfSquares(sv *StateVector) float64 {
	total := 0.0
	for _, p := range sv.Probabilities() {
		total += p
	}
	return total
}
