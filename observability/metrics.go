// Package observability tracks what the simulator has done during a run.
package observability

import (
	"sync/atomic"
	"time"
)

// Snapshot is a point-in-time copy of the execution counters.
type Snapshot struct {
	CircuitsRun  uint64
	GatesApplied uint64
	ShotsSampled uint64
	QubitsPeak   uint64
	TotalElapsed time.Duration
}

// ExecutionStats aggregates simulator activity across all demos of a
// process. Counters are atomic so a future concurrent backend would not
// need a redesign, even though execution is currently sequential.
type ExecutionStats struct {
	circuitsRun  atomic.Uint64
	gatesApplied atomic.Uint64
	shotsSampled atomic.Uint64
	qubitsPeak   atomic.Uint64
	elapsedNanos atomic.Int64
}

func NewExecutionStats() *ExecutionStats {
	return &ExecutionStats{}
}

// RecordRun accounts for one completed circuit execution.
func (s *ExecutionStats) RecordRun(qubits, gates, shots int, elapsed time.Duration) {
	s.circuitsRun.Add(1)
	s.gatesApplied.Add(uint64(gates))
	s.shotsSampled.Add(uint64(shots))
	s.elapsedNanos.Add(int64(elapsed))

	for {
		peak := s.qubitsPeak.Load()
		if uint64(qubits) <= peak {
			return
		}
		if s.qubitsPeak.CompareAndSwap(peak, uint64(qubits)) {
			return
		}
	}
}

func (s *ExecutionStats) Snapshot() Snapshot {
	return Snapshot{
		CircuitsRun:  s.circuitsRun.Load(),
		GatesApplied: s.gatesApplied.Load(),
		ShotsSampled: s.shotsSampled.Load(),
		QubitsPeak:   s.qubitsPeak.Load(),
		TotalElapsed: time.Duration(s.elapsedNanos.Load()),
	}
}
