package circuit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMalformed is returned, possibly wrapped, when decoding bytes that do not
// describe a valid circuit.
var ErrMalformed = errors.New("malformed circuit")

// Field numbers of the circuit wire format, which is protobuf-compatible:
//
//	message Circuit { uint32 qubits = 1; repeated Op ops = 2; }
//	message Op      { uint32 kind = 1;   uint32 qubit = 2; }
const (
	fieldQubits protowire.Number = 1
	fieldOps    protowire.Number = 2

	fieldOpKind  protowire.Number = 1
	fieldOpQubit protowire.Number = 2
)

// maxFrame bounds the length prefix accepted by ReadFrom.
const maxFrame = 64 << 20

// Marshal encodes c in the circuit wire format.
func (c *Circuit) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldQubits, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.qubits))
	for _, o := range c.ops {
		var ob []byte
		ob = protowire.AppendTag(ob, fieldOpKind, protowire.VarintType)
		ob = protowire.AppendVarint(ob, uint64(o.Kind))
		ob = protowire.AppendTag(ob, fieldOpQubit, protowire.VarintType)
		ob = protowire.AppendVarint(ob, uint64(o.Qubit))
		b = protowire.AppendTag(b, fieldOps, protowire.BytesType)
		b = protowire.AppendBytes(b, ob)
	}
	return b
}

// Unmarshal decodes a circuit from the wire format. Unknown fields are
// skipped.
func Unmarshal(b []byte) (*Circuit, error) {
	c := &Circuit{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == fieldQubits && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: qubits: %v", ErrMalformed, protowire.ParseError(n))
			}
			if v > math.MaxInt32 {
				return nil, fmt.Errorf("%w: qubit count %d out of range", ErrMalformed, v)
			}
			c.qubits = int(v)
			b = b[n:]
		case num == fieldOps && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: op: %v", ErrMalformed, protowire.ParseError(n))
			}
			o, err := unmarshalOp(v)
			if err != nil {
				return nil, err
			}
			c.ops = append(c.ops, o)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	for i, o := range c.ops {
		if o.Qubit >= c.qubits {
			return nil, fmt.Errorf("%w: op %d acts on qubit %d of a %d-qubit register",
				ErrMalformed, i, o.Qubit, c.qubits)
		}
	}
	return c, nil
}

func unmarshalOp(b []byte) (Op, error) {
	var (
		o    Op
		kind uint64
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Op{}, fmt.Errorf("%w: op: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.VarintType || (num != fieldOpKind && num != fieldOpQubit) {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Op{}, fmt.Errorf("%w: op field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return Op{}, fmt.Errorf("%w: op field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]
		if v > math.MaxInt32 {
			return Op{}, fmt.Errorf("%w: op field %d value %d out of range", ErrMalformed, num, v)
		}
		if num == fieldOpKind {
			kind = v
		} else {
			o.Qubit = int(v)
		}
	}
	o.Kind = Kind(kind)
	if kind > math.MaxUint8 || !o.Kind.valid() {
		return Op{}, fmt.Errorf("%w: unknown gate kind %d", ErrMalformed, kind)
	}
	return o, nil
}

// WriteTo writes c to w as a single frame: int32 length | wire bytes. The
// length is little-endian.
func (c *Circuit) WriteTo(w io.Writer) (int64, error) {
	marshalled := c.Marshal()
	if err := binary.Write(w, binary.LittleEndian, int32(len(marshalled))); err != nil {
		return 0, err
	}
	n, err := w.Write(marshalled)
	return int64(n) + 4, err
}

// ReadFrom replaces the contents of c with the next frame read from r, as
// written by WriteTo.
func (c *Circuit) ReadFrom(r io.Reader) (int64, error) {
	var mLen int32
	if err := binary.Read(r, binary.LittleEndian, &mLen); err != nil {
		return 0, err
	}
	if mLen < 0 || mLen > maxFrame {
		return 4, fmt.Errorf("%w: frame length %d", ErrMalformed, mLen)
	}
	marshalled := make([]byte, mLen)
	n, err := io.ReadFull(r, marshalled)
	if err != nil {
		return int64(n) + 4, err
	}
	decoded, err := Unmarshal(marshalled)
	if err != nil {
		return int64(n) + 4, err
	}
	*c = *decoded
	return int64(n) + 4, nil
}
