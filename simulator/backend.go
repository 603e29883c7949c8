package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"quantum-lab/contract"
	"quantum-lab/domain"
	"quantum-lab/errors"
	"quantum-lab/observability"
)

var validate = validator.New()

type runRequest struct {
	Shots  int `validate:"gte=1"`
	Qubits int `validate:"gte=1"`
}

// Ensure *Local implements the contract.Backend interface at compile time.
var _ contract.Backend = (*Local)(nil)

// Local is the in-process state-vector backend. It is the only executor
// shipped with the lab; anything speaking contract.Backend could replace it.
type Local struct {
	maxQubits int
	rng       *rand.Rand
	stats     *observability.ExecutionStats
	log       *slog.Logger

	// rand.Rand is not safe for concurrent use.
	mu sync.Mutex
}

// NewLocal builds a backend seeded for reproducible sampling.
// A zero seed falls back to the wall clock.
func NewLocal(log *slog.Logger, stats *observability.ExecutionStats, seed int64) *Local {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Local{
		maxQubits: QubitCapacity(),
		rng:       rand.New(rand.NewSource(seed)),
		stats:     stats,
		log:       log,
	}
}

func (l *Local) Name() string    { return "local_statevector" }
func (l *Local) MaxQubits() int  { return l.maxQubits }
func (l *Local) Simulator() bool { return true }

// Run executes the circuit for the requested number of shots and counts
// the classical register readouts. Readout strings follow the register
// convention of domain.Counts: c[n-1] leftmost, c[0] rightmost.
func (l *Local) Run(ctx context.Context, circuit *domain.Circuit, shots int) (domain.Result, error) {
	started := time.Now()

	if err := validate.Struct(runRequest{Shots: shots, Qubits: circuit.Qubits}); err != nil {
		return domain.Result{}, fmt.Errorf("run request rejected: %w", err)
	}
	if err := circuit.Validate(); err != nil {
		return domain.Result{}, err
	}
	if len(circuit.Measures) == 0 {
		return domain.Result{}, errors.ErrNoMeasurement
	}
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var counts domain.Counts
	if superposed(circuit) {
		// Only Hadamard circuits need amplitudes; the memory-derived
		// qubit ceiling binds here and nowhere else.
		if circuit.Qubits > l.maxQubits {
			return domain.Result{}, fmt.Errorf("%w: %d qubits, capacity %d",
				errors.ErrTooManyQubits, circuit.Qubits, l.maxQubits)
		}

		state := NewStateVector(circuit.Qubits)
		for _, g := range circuit.Gates {
			switch g.Kind {
			case domain.GateX:
				state.ApplyX(g.Target)
			case domain.GateH:
				state.ApplyH(g.Target)
			case domain.GateZ:
				state.ApplyZ(g.Target)
			case domain.GateCX:
				state.ApplyCX(g.Control, g.Target)
			}
		}

		counts = domain.Counts{}
		for shot := 0; shot < shots; shot++ {
			basis := state.Sample(l.rng)
			counts[l.readout(circuit, func(q int) bool { return basis&(1<<q) != 0 })]++
		}
	} else {
		// Without superposition the register never leaves the
		// computational basis: every shot reads back the prepared
		// bits, whatever the register width.
		bits := classicalBits(circuit)
		counts = domain.Counts{l.readout(circuit, func(q int) bool { return bits[q] }): shots}
	}

	result := domain.Result{
		JobID:   uuid.NewString(),
		Backend: l.Name(),
		Shots:   shots,
		Counts:  counts,
		Elapsed: time.Since(started),
	}

	if l.stats != nil {
		l.stats.RecordRun(circuit.Qubits, len(circuit.Gates), shots, result.Elapsed)
	}
	l.log.Debug("Circuit executed",
		"job_id", result.JobID,
		"qubits", circuit.Qubits,
		"gates", len(circuit.Gates),
		"shots", shots,
		"outcomes", len(counts),
		"elapsed", result.Elapsed,
	)
	return result, nil
}

// readout maps measured qubit values onto the classical register.
// Unmeasured classical bits stay 0.
func (l *Local) readout(circuit *domain.Circuit, set func(qubit int) bool) string {
	bits := make([]byte, circuit.Clbits)
	for i := range bits {
		bits[i] = '0'
	}
	for _, m := range circuit.Measures {
		if set(m.Qubit) {
			bits[circuit.Clbits-1-m.Clbit] = '1'
		}
	}
	return string(bits)
}

// superposed reports whether any gate takes the register off a single
// basis state.
func superposed(circuit *domain.Circuit) bool {
	for _, g := range circuit.Gates {
		if g.Kind == domain.GateH {
			return true
		}
	}
	return false
}

// classicalBits evolves an H-free circuit directly on the basis bits.
// Z only changes the phase, invisible in the computational basis.
func classicalBits(circuit *domain.Circuit) []bool {
	bits := make([]bool, circuit.Qubits)
	for _, g := range circuit.Gates {
		switch g.Kind {
		case domain.GateX:
			bits[g.Target] = !bits[g.Target]
		case domain.GateCX:
			if bits[g.Control] {
				bits[g.Target] = !bits[g.Target]
			}
		}
	}
	return bits
}
