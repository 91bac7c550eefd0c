package bb84

import (
	"fmt"

	"github.com/alan-christopher/bb84prep/bb84/bitmap"
)

// Encode prepares the BB84 state for (bit, basis) on qubit of c, assuming the
// qubit starts in |0>, and returns c itself:
//
//	basis        bit  gates
//	rectilinear  0    (none)
//	rectilinear  1    X
//	diagonal     0    H
//	diagonal     1    X, H
//
// Inputs are validated before c is touched, so an error leaves c unmodified.
func Encode[C Circuit](bit Bit, basis Basis, qubit int, c C) (C, error) {
	r, err := lookup(bit, basis)
	if err != nil {
		return c, err
	}
	if qubit < 0 {
		return c, fmt.Errorf("%w: negative qubit index %d", ErrInvalidInput, qubit)
	}
	r.apply(c, qubit)
	return c, nil
}

// EncodeRegister prepares qubit i of c with bit i of bits in basis i of bases,
// for every i < bits.Size(). The two registers must be the same size; if they
// are not, c is left unmodified.
func EncodeRegister[C Circuit](bits, bases bitmap.Dense, c C) (C, error) {
	if bits.Size() != bases.Size() {
		return c, fmt.Errorf("%w: bit and basis length must agree: %d != %d",
			ErrInvalidInput, bits.Size(), bases.Size())
	}
	for i := 0; i < bits.Size(); i++ {
		r, err := lookup(bitOf(bits.Get(i)), basisOf(bases.Get(i)))
		if err != nil {
			// Unreachable: a bitmap only holds 0s and 1s.
			return c, err
		}
		r.apply(c, i)
	}
	return c, nil
}

func bitOf(b bool) Bit {
	if b {
		return One
	}
	return Zero
}

func basisOf(b bool) Basis {
	if b {
		return Diagonal
	}
	return Rectilinear
}
