// Package circuit provides a minimal, in-memory quantum circuit: an ordered
// list of single-qubit gates. It records gates; it does not execute them.
package circuit

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// A Kind identifies a gate. The zero Kind is invalid.
type Kind uint8

const (
	KindX Kind = iota + 1
	KindH
)

// String returns the OpenQASM mnemonic of k.
func (k Kind) String() string {
	switch k {
	case KindX:
		return "x"
	case KindH:
		return "h"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) valid() bool {
	return k == KindX || k == KindH
}

// An Op is a single gate applied to a single qubit.
type Op struct {
	Kind  Kind
	Qubit int
}

// Matrix returns the 2x2 unitary of o in the computational basis, or nil if
// o.Kind is invalid.
func (o Op) Matrix() *mat.Dense {
	switch o.Kind {
	case KindX:
		return mat.NewDense(2, 2, []float64{
			0, 1,
			1, 0,
		})
	case KindH:
		s := 1 / math.Sqrt2
		return mat.NewDense(2, 2, []float64{
			s, s,
			s, -s,
		})
	}
	return nil
}

// A Circuit is an ordered sequence of gates over a register of qubits. The
// register grows to cover any qubit a gate is applied to.
//
// A Circuit is not safe for concurrent mutation.
type Circuit struct {
	qubits int
	ops    []Op
}

// New returns an empty circuit over a register of the given number of qubits.
func New(qubits int) *Circuit {
	if qubits < 0 {
		qubits = 0
	}
	return &Circuit{qubits: qubits}
}

// X appends a bit flip on qubit.
func (c *Circuit) X(qubit int) {
	c.append(Op{Kind: KindX, Qubit: qubit})
}

// H appends a Hadamard on qubit.
func (c *Circuit) H(qubit int) {
	c.append(Op{Kind: KindH, Qubit: qubit})
}

func (c *Circuit) append(o Op) {
	c.ops = append(c.ops, o)
	if o.Qubit >= c.qubits {
		c.qubits = o.Qubit + 1
	}
}

// Qubits returns the size of c's register.
func (c *Circuit) Qubits() int {
	return c.qubits
}

// Len returns the number of gates in c.
func (c *Circuit) Len() int {
	return len(c.ops)
}

// Ops returns a copy of the gates in c, in application order.
func (c *Circuit) Ops() []Op {
	return append([]Op(nil), c.ops...)
}

// OpsOn returns the gates in c acting on qubit, in application order.
func (c *Circuit) OpsOn(qubit int) []Op {
	var r []Op
	for _, o := range c.ops {
		if o.Qubit == qubit {
			r = append(r, o)
		}
	}
	return r
}

// QubitUnitary returns the product of the gates acting on qubit, i.e. the
// single-qubit unitary U such that the circuit takes |psi> on that qubit to
// U|psi>. A qubit without gates yields the identity.
func (c *Circuit) QubitUnitary(qubit int) *mat.Dense {
	u := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
	for _, o := range c.OpsOn(qubit) {
		var next mat.Dense
		next.Mul(o.Matrix(), u)
		u = &next
	}
	return u
}

// QASM renders c as an OpenQASM 2.0 program.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", max(c.qubits, 1))
	if len(c.ops) > 0 {
		sb.WriteString("\n")
	}
	for _, o := range c.ops {
		fmt.Fprintf(&sb, "%s q[%d];\n", o.Kind, o.Qubit)
	}
	return sb.String()
}
