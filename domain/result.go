package domain

import (
	"time"

	"quantum-lab/errors"
)

// Counts maps classical register readouts to the number of shots that
// produced them. Keys follow the register convention: the bit of c[n-1]
// is leftmost and the bit of c[0] is rightmost, so a readout string must
// be reversed to recover preparation order.
type Counts map[string]int

// Result is the outcome of one backend execution.
type Result struct {
	JobID   string
	Backend string
	Shots   int
	Counts  Counts
	Elapsed time.Duration
}

// Single returns the readout of a single-shot run.
// A result with several outcomes has no single readout and is rejected.
func (r Result) Single() (string, error) {
	if len(r.Counts) > 1 {
		return "", errors.ErrAmbiguousOutcome
	}
	for outcome := range r.Counts {
		return outcome, nil
	}
	return "", errors.ErrNoOutcome
}

// Total returns the number of shots accounted for across all outcomes.
func (r Result) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}
