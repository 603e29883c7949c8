package superposition

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"quantum-lab/domain"
	"quantum-lab/simulator"
)

func TestCoinFlipCircuit(t *testing.T) {
	req := require.New(t)

	circuit := CoinFlipCircuit()
	req.Equal(1, circuit.Qubits)
	req.Equal(1, circuit.Clbits)
	req.Equal([]domain.Gate{{Kind: domain.GateH, Target: 0, Control: -1}}, circuit.Gates)
	req.Equal([]domain.Measure{{Qubit: 0, Clbit: 0}}, circuit.Measures)
	req.NoError(circuit.Validate())
}

func TestFlip(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	backend := simulator.NewLocal(log, nil, 1)

	result, err := Flip(context.Background(), backend, DefaultShots)
	req.NoError(err)

	req.Equal(DefaultShots, result.Total())
	req.Len(result.Counts, 2)
	req.Greater(result.Counts["0"], 0)
	req.Greater(result.Counts["1"], 0)
}

func TestFlip_PropagatesBackendError(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	backend := simulator.NewLocal(log, nil, 1)

	_, err := Flip(context.Background(), backend, 0)
	req.Error(err)
}
