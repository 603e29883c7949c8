// Package simulator provides a local state-vector backend.
// It stands in for a real quantum device: preparation-only circuits are
// fully deterministic, Hadamard circuits sample from the amplitude
// distribution of the final state.
package simulator

import (
	"math"
	"math/rand"
)

// StateVector holds the 2^n complex amplitudes of an n-qubit register,
// indexed by basis state with qubit 0 as the least significant bit.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector initializes |0...0⟩.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// ApplyX swaps the amplitude pairs that differ in qubit q.
func (s *StateVector) ApplyX(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// ApplyH mixes each amplitude pair with the Hadamard factor 1/sqrt(2).
func (s *StateVector) ApplyH(q int) {
	factor := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	next := make([]complex128, len(s.Amplitudes))
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			next[i] = factor * (s.Amplitudes[i] + s.Amplitudes[j])
			next[j] = factor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = next
}

// ApplyZ negates the amplitudes where qubit q is set.
func (s *StateVector) ApplyZ(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

// ApplyCX flips the target amplitudes in the subspace where control is set.
func (s *StateVector) ApplyCX(control, target int) {
	ctrlBit := 1 << control
	bit := 1 << target
	for i := range s.Amplitudes {
		if i&ctrlBit != 0 && i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// Probability returns |amplitude|^2 of one basis state.
func (s *StateVector) Probability(basis int) float64 {
	a := s.Amplitudes[basis]
	return real(a)*real(a) + imag(a)*imag(a)
}

// Sample draws one basis state from the measurement distribution.
// A state concentrated on a single basis vector returns it regardless
// of the random draw, which keeps X-only circuits deterministic.
func (s *StateVector) Sample(rng *rand.Rand) int {
	r := rng.Float64()
	cumulative := 0.0
	for i := range s.Amplitudes {
		cumulative += s.Probability(i)
		if r < cumulative {
			return i
		}
	}
	// Rounding can leave cumulative marginally below 1.
	return len(s.Amplitudes) - 1
}
