// Package qsort sorts integers with a quantum-flavoured comparison.
// The comparison circuit only ever prepares |1⟩ when a > b already
// holds classically, so the sort is fully deterministic; the circuit
// run is illustration, not decision logic.
package qsort

import (
	"context"
	"fmt"
	"log/slog"

	"quantum-lab/contract"
	"quantum-lab/domain"
)

// Comparator runs the one-qubit compare circuit on a backend.
type Comparator struct {
	backend contract.Backend
	log     *slog.Logger
}

func NewComparator(backend contract.Backend, log *slog.Logger) *Comparator {
	return &Comparator{backend: backend, log: log}
}

// Comparison is the full record of one compare circuit run, kept so
// callers can narrate the circuit and its readout.
type Comparison struct {
	A, B    int
	Greater bool
	Outcome string
	Circuit *domain.Circuit
}

// Greater reports whether a > b by preparing a single qubit, flipping it
// iff the condition holds, and reading it back with one shot.
func (c *Comparator) Greater(ctx context.Context, a, b int) (Comparison, error) {
	circuit := domain.NewCircuit(1, 1)
	if a > b {
		circuit.X(0)
	}
	circuit.MeasureInto(0, 0)

	result, err := c.backend.Run(ctx, circuit, 1)
	if err != nil {
		return Comparison{}, fmt.Errorf("compare %d > %d: %w", a, b, err)
	}
	outcome, err := result.Single()
	if err != nil {
		return Comparison{}, fmt.Errorf("compare %d > %d: %w", a, b, err)
	}

	c.log.Debug("Comparison measured", "a", a, "b", b, "outcome", outcome)
	return Comparison{
		A:       a,
		B:       b,
		Greater: outcome == "1",
		Outcome: outcome,
		Circuit: circuit,
	}, nil
}

// Trace observes each comparison; values is the working slice after a
// potential swap. Used by the CLI, nil to disable.
type Trace func(cmp Comparison, values []int)

// BubbleSort sorts a copy of values ascending, one quantum comparison
// per adjacent pair.
func BubbleSort(ctx context.Context, cmp *Comparator, values []int, trace Trace) ([]int, error) {
	sorted := make([]int, len(values))
	copy(sorted, values)

	for i := 0; i < len(sorted); i++ {
		for j := 0; j < len(sorted)-i-1; j++ {
			comparison, err := cmp.Greater(ctx, sorted[j], sorted[j+1])
			if err != nil {
				return nil, err
			}
			if comparison.Greater {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
			if trace != nil {
				trace(comparison, sorted)
			}
		}
	}
	return sorted, nil
}
