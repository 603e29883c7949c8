package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExecutionStats_RecordRun(t *testing.T) {
	req := require.New(t)
	stats := NewExecutionStats()

	stats.RecordRun(8, 5, 1, 2*time.Millisecond)
	stats.RecordRun(16, 9, 1000, 3*time.Millisecond)
	stats.RecordRun(4, 1, 1, time.Millisecond)

	snapshot := stats.Snapshot()
	req.Equal(uint64(3), snapshot.CircuitsRun)
	req.Equal(uint64(15), snapshot.GatesApplied)
	req.Equal(uint64(1002), snapshot.ShotsSampled)
	req.Equal(uint64(16), snapshot.QubitsPeak)
	req.Equal(6*time.Millisecond, snapshot.TotalElapsed)
}

func TestExecutionStats_ZeroValue(t *testing.T) {
	req := require.New(t)
	req.Equal(Snapshot{}, NewExecutionStats().Snapshot())
}
