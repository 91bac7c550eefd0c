// Package bb84 provides utilities for preparing the single-qubit states used
// by the BB84 protocol: a classical bit is encoded in either the rectilinear
// or the diagonal basis by appending gates to a caller-owned circuit.
package bb84

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned, possibly wrapped, whenever a bit, basis, qubit
// index or label lies outside of its domain.
var ErrInvalidInput = errors.New("invalid input")

// A Bit is the classical value to encode. Only Zero and One are valid.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// A Basis selects the encoding basis. Only Rectilinear and Diagonal are valid.
type Basis uint8

const (
	// Rectilinear encodes 0 as |0> and 1 as |1>.
	Rectilinear Basis = 0
	// Diagonal encodes 0 as |+> and 1 as |->.
	Diagonal Basis = 1
)

func (b Basis) String() string {
	switch b {
	case Rectilinear:
		return "rectilinear"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Basis(%d)", uint8(b))
}

// A Circuit is the minimal surface of a quantum circuit needed to prepare BB84
// states. Both operations append a gate acting on the given qubit and are
// expected to succeed for any valid index.
type Circuit interface {
	// X appends a bit flip (Pauli-X) on qubit.
	X(qubit int)
	// H appends a basis change (Hadamard) on qubit.
	H(qubit int)
}

// A recipe describes how one of the four BB84 states is prepared from |0>.
// When both gates are needed the flip always comes first.
type recipe struct {
	flip   bool
	change bool
	label  Label
}

// recipes is indexed by [basis][bit].
var recipes = [2][2]recipe{
	Rectilinear: {
		Zero: {label: LabelZero},
		One:  {flip: true, label: LabelOne},
	},
	Diagonal: {
		Zero: {change: true, label: LabelPlus},
		One:  {flip: true, change: true, label: LabelMinus},
	},
}

func lookup(bit Bit, basis Basis) (recipe, error) {
	if bit > One {
		return recipe{}, fmt.Errorf("%w: bit must be 0 or 1, got %d", ErrInvalidInput, bit)
	}
	if basis > Diagonal {
		return recipe{}, fmt.Errorf("%w: basis must be 0 or 1, got %d", ErrInvalidInput, basis)
	}
	return recipes[basis][bit], nil
}

func (r recipe) apply(c Circuit, qubit int) {
	if r.flip {
		c.X(qubit)
	}
	if r.change {
		c.H(qubit)
	}
}
