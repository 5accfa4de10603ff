package qsim

import "math"

/*
BlochVector is the simplified sphere projection the circuit view draws for
qubit 0. It reads only amplitude[0] and phases[0], so it is not the reduced
single-qubit state of an entangled register.
*/
type BlochVector struct {
	Theta float64
	Phi   float64
}

// Bloch projects sv onto the sphere as θ = acos(2·amplitude[0] - 1) and
// φ = phases[0]. The acos argument is clamped to [-1, 1].
func Bloch(sv *StateVector) BlochVector {
	cosine := 2*sv.amplitudes[0] - 1

	return BlochVector{
		Theta: math.Acos(math.Max(-1, math.Min(1, cosine))),
		Phi:   sv.phases[0],
	}
}

// Coordinates returns the point on the unit sphere.
func (b BlochVector) Coordinates() (x, y, z float64) {
	sinTheta := math.Sin(b.Theta)
	return sinTheta * math.Cos(b.Phi), sinTheta * math.Sin(b.Phi), math.Cos(b.Theta)
}
