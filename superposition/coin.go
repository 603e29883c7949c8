// Package superposition flips a quantum coin: one qubit through a
// Hadamard gate, measured over many shots. The counts are the whole
// story; no statistics are derived from them.
package superposition

import (
	"context"
	"fmt"

	"quantum-lab/contract"
	"quantum-lab/domain"
)

// DefaultShots matches the classic demo configuration.
const DefaultShots = 1000

// CoinFlipCircuit builds the one-qubit H + measure circuit.
func CoinFlipCircuit() *domain.Circuit {
	return domain.NewCircuit(1, 1).H(0).MeasureInto(0, 0)
}

// Flip samples the superposed qubit for the given number of shots and
// returns the raw outcome counts.
func Flip(ctx context.Context, backend contract.Backend, shots int) (domain.Result, error) {
	result, err := backend.Run(ctx, CoinFlipCircuit(), shots)
	if err != nil {
		return domain.Result{}, fmt.Errorf("coin flip: %w", err)
	}
	return result, nil
}
