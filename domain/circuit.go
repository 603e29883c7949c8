// Package domain contains the core concepts of the simulator.
// This file defines circuits, gates and measurements.
// Circuits are plain values built once and never mutated after submission.
package domain

import (
	"fmt"
	"strings"

	"quantum-lab/errors"
)

type GateKind string

const (
	GateX  GateKind = "x"
	GateH  GateKind = "h"
	GateZ  GateKind = "z"
	GateCX GateKind = "cx"
)

// Gate is a single operation placed on the circuit timeline.
// Control is -1 for single-qubit gates.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
}

// Measure maps a qubit onto a classical register bit.
type Measure struct {
	Qubit int
	Clbit int
}

// Circuit holds a fixed-width quantum register, a classical register and
// the ordered list of operations applied to them.
type Circuit struct {
	Qubits   int
	Clbits   int
	Gates    []Gate
	Measures []Measure
}

func NewCircuit(qubits, clbits int) *Circuit {
	return &Circuit{Qubits: qubits, Clbits: clbits}
}

// X flips the target qubit.
func (c *Circuit) X(q int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateX, Target: q, Control: -1})
	return c
}

// H puts the target qubit into an equal superposition.
func (c *Circuit) H(q int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateH, Target: q, Control: -1})
	return c
}

// Z applies a phase flip on the target qubit.
func (c *Circuit) Z(q int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateZ, Target: q, Control: -1})
	return c
}

// CX applies a controlled X from control to target.
func (c *Circuit) CX(control, target int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateCX, Target: target, Control: control})
	return c
}

// MeasureInto records a measurement of qubit q into classical bit cl.
func (c *Circuit) MeasureInto(q, cl int) *Circuit {
	c.Measures = append(c.Measures, Measure{Qubit: q, Clbit: cl})
	return c
}

// MeasureAll measures every qubit into the classical bit of the same index.
func (c *Circuit) MeasureAll() *Circuit {
	for q := 0; q < c.Qubits; q++ {
		c.MeasureInto(q, q)
	}
	return c
}

// Validate checks every register index before execution.
// Builders stay chainable; all range errors surface here instead.
func (c *Circuit) Validate() error {
	if c.Qubits < 1 {
		return fmt.Errorf("%w: circuit declares %d qubits", errors.ErrQubitOutOfRange, c.Qubits)
	}
	for _, g := range c.Gates {
		switch g.Kind {
		case GateX, GateH, GateZ:
			if g.Target < 0 || g.Target >= c.Qubits {
				return fmt.Errorf("%w: %s on q[%d] of %d", errors.ErrQubitOutOfRange, g.Kind, g.Target, c.Qubits)
			}
		case GateCX:
			if g.Target < 0 || g.Target >= c.Qubits || g.Control < 0 || g.Control >= c.Qubits {
				return fmt.Errorf("%w: cx on q[%d],q[%d] of %d", errors.ErrQubitOutOfRange, g.Control, g.Target, c.Qubits)
			}
			if g.Control == g.Target {
				return fmt.Errorf("%w: cx control equals target q[%d]", errors.ErrQubitOutOfRange, g.Target)
			}
		default:
			return fmt.Errorf("%w: %q", errors.ErrUnknownGate, g.Kind)
		}
	}
	for _, m := range c.Measures {
		if m.Qubit < 0 || m.Qubit >= c.Qubits {
			return fmt.Errorf("%w: measure q[%d] of %d", errors.ErrQubitOutOfRange, m.Qubit, c.Qubits)
		}
		if m.Clbit < 0 || m.Clbit >= c.Clbits {
			return fmt.Errorf("%w: measure into c[%d] of %d", errors.ErrClbitOutOfRange, m.Clbit, c.Clbits)
		}
	}
	return nil
}

// Draw renders the circuit as one ASCII line per qubit, operations in
// program order left to right.
func (c *Circuit) Draw() string {
	type column []string

	columns := make([]column, 0, len(c.Gates)+len(c.Measures))
	blank := func() column {
		col := make(column, c.Qubits)
		for i := range col {
			col[i] = "───"
		}
		return col
	}

	for _, g := range c.Gates {
		col := blank()
		switch g.Kind {
		case GateCX:
			col[g.Control] = "─●─"
			col[g.Target] = "─⊕─"
		default:
			col[g.Target] = fmt.Sprintf("─%s─", strings.ToUpper(string(g.Kind)))
		}
		columns = append(columns, col)
	}
	for _, m := range c.Measures {
		col := blank()
		col[m.Qubit] = "─M─"
		columns = append(columns, col)
	}

	var b strings.Builder
	for q := 0; q < c.Qubits; q++ {
		fmt.Fprintf(&b, "q%d: ──", q)
		for _, col := range columns {
			b.WriteString(col[q])
		}
		b.WriteString("──\n")
	}
	fmt.Fprintf(&b, "c: %d bits\n", c.Clbits)
	return b.String()
}
