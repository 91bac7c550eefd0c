package bb84

import (
	"fmt"
	"math"

	"github.com/alan-christopher/bb84prep/bb84/bitmap"
	"gonum.org/v1/gonum/mat"
)

// A Label names one of the four BB84 states.
type Label string

const (
	LabelZero  Label = "0"
	LabelOne   Label = "1"
	LabelPlus  Label = "+"
	LabelMinus Label = "-"
)

// LabelOf returns the label of the state that Encode prepares for
// (bit, basis).
func LabelOf(bit Bit, basis Basis) (Label, error) {
	r, err := lookup(bit, basis)
	if err != nil {
		return "", err
	}
	return r.label, nil
}

// LabelsOf returns LabelOf(bits[i], bases[i]) for every position of the two
// registers, which must be the same size.
func LabelsOf(bits, bases bitmap.Dense) ([]Label, error) {
	if bits.Size() != bases.Size() {
		return nil, fmt.Errorf("%w: bit and basis length must agree: %d != %d",
			ErrInvalidInput, bits.Size(), bases.Size())
	}
	labels := make([]Label, 0, bits.Size())
	for i := 0; i < bits.Size(); i++ {
		l, err := LabelOf(bitOf(bits.Get(i)), basisOf(bases.Get(i)))
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// ParseLabel is the inverse of LabelOf.
func ParseLabel(s string) (Bit, Basis, error) {
	for basis := range recipes {
		for bit, r := range recipes[basis] {
			if string(r.label) == s {
				return Bit(bit), Basis(basis), nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: unknown label %q", ErrInvalidInput, s)
}

// Valid reports whether l is one of the four BB84 labels.
func (l Label) Valid() bool {
	_, _, err := ParseLabel(string(l))
	return err == nil
}

// Amplitudes returns the state vector of l in the computational basis,
// (<0|l>, <1|l>). All four states have real amplitudes. It returns nil for an
// invalid label.
func (l Label) Amplitudes() *mat.VecDense {
	s := 1 / math.Sqrt2
	switch l {
	case LabelZero:
		return mat.NewVecDense(2, []float64{1, 0})
	case LabelOne:
		return mat.NewVecDense(2, []float64{0, 1})
	case LabelPlus:
		return mat.NewVecDense(2, []float64{s, s})
	case LabelMinus:
		return mat.NewVecDense(2, []float64{s, -s})
	}
	return nil
}
