package simulator

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"quantum-lab/domain"
	"quantum-lab/errors"
	"quantum-lab/observability"
)

func newTestBackend(t *testing.T) *Local {
	t.Helper()
	return NewLocal(logs.GetLoggerFromLevel(slog.LevelDebug), nil, 1)
}

func TestLocal_RegisterOrderContract(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)

	// Prepare flags f over qubits 0..n-1; the single-shot readout must
	// be reverse(f): measured[i] == flags[n-1-i].
	tests := []struct {
		name     string
		flags    []bool
		expected string
	}{
		{
			name:     "Only qubit 0 set",
			flags:    []bool{true, false, false},
			expected: "001",
		},
		{
			name:     "Only highest qubit set",
			flags:    []bool{false, false, true},
			expected: "100",
		},
		{
			name:     "Asymmetric pattern",
			flags:    []bool{true, true, false, true},
			expected: "1011",
		},
		{
			name:     "Nothing prepared",
			flags:    []bool{false, false},
			expected: "00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circuit := domain.NewCircuit(len(tt.flags), len(tt.flags))
			for q, set := range tt.flags {
				if set {
					circuit.X(q)
				}
			}
			circuit.MeasureAll()

			result, err := backend.Run(context.Background(), circuit, 1)
			req.NoError(err)

			outcome, err := result.Single()
			req.NoError(err)
			req.Equal(tt.expected, outcome)
			req.Len(result.Counts, 1)
			req.NotEmpty(result.JobID)
		})
	}
}

// TestLocal_WideDeterministicCircuit prepares far more qubits than the
// superposition ceiling allows: a basis-state circuit never touches
// amplitudes, so the width must not be rejected. A 9-character chunk
// needs 72 qubits, well past any dense-vector capacity.
func TestLocal_WideDeterministicCircuit(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)

	width := backend.MaxQubits() + 46
	circuit := domain.NewCircuit(width, width)
	circuit.X(0).X(width - 1)
	circuit.MeasureAll()

	result, err := backend.Run(context.Background(), circuit, 1)
	req.NoError(err)

	outcome, err := result.Single()
	req.NoError(err)
	req.Len(outcome, width)
	req.Equal(byte('1'), outcome[0], "q[width-1] maps to the leftmost bit")
	req.Equal(byte('1'), outcome[width-1], "q[0] maps to the rightmost bit")
	req.Equal(width-2, strings.Count(outcome, "0"))
}

func TestLocal_DeterministicAcrossShots(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)

	circuit := domain.NewCircuit(2, 2).X(1).MeasureAll()
	result, err := backend.Run(context.Background(), circuit, 100)
	req.NoError(err)
	req.Equal(domain.Counts{"10": 100}, result.Counts)
}

func TestLocal_HadamardSampling(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)

	circuit := domain.NewCircuit(1, 1).H(0).MeasureInto(0, 0)
	result, err := backend.Run(context.Background(), circuit, 1000)
	req.NoError(err)

	req.Equal(1000, result.Total())
	req.Len(result.Counts, 2)
	req.Greater(result.Counts["0"], 400)
	req.Greater(result.Counts["1"], 400)
}

func TestLocal_SeedReproducibility(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	run := func() domain.Counts {
		backend := NewLocal(log, nil, 42)
		circuit := domain.NewCircuit(1, 1).H(0).MeasureInto(0, 0)
		result, err := backend.Run(context.Background(), circuit, 200)
		req.NoError(err)
		return result.Counts
	}

	req.Equal(run(), run())
}

func TestLocal_RunRejections(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)
	ctx := context.Background()

	t.Run("Zero shots", func(t *testing.T) {
		_, err := backend.Run(ctx, domain.NewCircuit(1, 1).MeasureAll(), 0)
		req.Error(err)
	})

	t.Run("No measurement", func(t *testing.T) {
		_, err := backend.Run(ctx, domain.NewCircuit(1, 1).X(0), 1)
		req.ErrorIs(err, errors.ErrNoMeasurement)
	})

	t.Run("Invalid circuit", func(t *testing.T) {
		_, err := backend.Run(ctx, domain.NewCircuit(1, 1).X(3).MeasureAll(), 1)
		req.ErrorIs(err, errors.ErrQubitOutOfRange)
	})

	t.Run("Too many qubits in superposition", func(t *testing.T) {
		width := backend.MaxQubits() + 1
		circuit := domain.NewCircuit(width, width).H(0).MeasureAll()
		_, err := backend.Run(ctx, circuit, 1)
		req.ErrorIs(err, errors.ErrTooManyQubits)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := backend.Run(cancelled, domain.NewCircuit(1, 1).MeasureAll(), 1)
		req.ErrorIs(err, context.Canceled)
	})
}

func TestLocal_StatsRecorded(t *testing.T) {
	req := require.New(t)
	stats := observability.NewExecutionStats()
	backend := NewLocal(logs.GetLoggerFromLevel(slog.LevelDebug), stats, 1)

	circuit := domain.NewCircuit(2, 2).X(0).X(1).MeasureAll()
	_, err := backend.Run(context.Background(), circuit, 5)
	req.NoError(err)

	snapshot := stats.Snapshot()
	req.Equal(uint64(1), snapshot.CircuitsRun)
	req.Equal(uint64(2), snapshot.GatesApplied)
	req.Equal(uint64(5), snapshot.ShotsSampled)
	req.Equal(uint64(2), snapshot.QubitsPeak)
}

func TestQubitCapacity(t *testing.T) {
	req := require.New(t)

	capacity := QubitCapacity()
	req.GreaterOrEqual(capacity, 1)
	req.LessOrEqual(capacity, HardCap)
}
