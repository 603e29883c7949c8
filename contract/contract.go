//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"quantum-lab/domain"
)

// Backend executes circuits. The local simulator implements it, and any
// substitute must honour the register-order contract of domain.Counts:
// for a gate-free X preparation of flags f, the single-shot readout is
// the reverse of f.
type Backend interface {
	Name() string
	MaxQubits() int
	Simulator() bool
	Run(ctx context.Context, circuit *domain.Circuit, shots int) (domain.Result, error)
}
