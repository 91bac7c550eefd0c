package circuit

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func sample() *Circuit {
	c := New(4)
	c.X(3)
	c.H(2)
	c.X(0)
	c.H(0)
	return c
}

func TestMarshalRoundTrip(t *testing.T) {
	c := sample()
	got, err := Unmarshal(c.Marshal())
	require.NoError(t, err)
	assert.Equal(t, c.Qubits(), got.Qubits())
	assert.Equal(t, c.Ops(), got.Ops())
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("future"))
	b = append(b, sample().Marshal()...)
	b = protowire.AppendTag(b, 10, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)

	got, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, sample().Ops(), got.Ops())
}

func TestUnmarshalErrors(t *testing.T) {
	op := func(kind, qubit uint64) []byte {
		var ob []byte
		ob = protowire.AppendTag(ob, fieldOpKind, protowire.VarintType)
		ob = protowire.AppendVarint(ob, kind)
		ob = protowire.AppendTag(ob, fieldOpQubit, protowire.VarintType)
		ob = protowire.AppendVarint(ob, qubit)
		var b []byte
		b = protowire.AppendTag(b, fieldQubits, protowire.VarintType)
		b = protowire.AppendVarint(b, 2)
		b = protowire.AppendTag(b, fieldOps, protowire.BytesType)
		return protowire.AppendBytes(b, ob)
	}
	valid := sample().Marshal()

	tcs := []struct {
		name string
		in   []byte
	}{
		{"truncated", valid[:len(valid)-1]},
		{"bad tag", []byte{0xFF}},
		{"unknown kind", op(9, 0)},
		{"zero kind", op(0, 0)},
		{"wrapping kind", op(256+uint64(KindX), 0)},
		{"qubit out of range", op(uint64(KindH), 2)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v, want ErrMalformed", err)
		})
	}
}

func TestFrameBuffer(t *testing.T) {
	var buf bytes.Buffer
	c := sample()
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	got := New(0)
	m, err := got.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, c.Ops(), got.Ops())
	assert.Equal(t, c.Qubits(), got.Qubits())
}

func TestFrameBadLength(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	_, err := New(0).ReadFrom(buf)
	assert.True(t, errors.Is(err, ErrMalformed), "got %v, want ErrMalformed", err)
}

func TestFramePipe(t *testing.T) {
	l, r := net.Pipe()
	c := sample()
	got := New(0)

	// net.Pipe() doesn't do any sort of buffering, so we perform these
	// operations asynchronously.
	wErr := make(chan error, 1)
	rErr := make(chan error, 1)
	go func() {
		_, err := c.WriteTo(l)
		wErr <- err
	}()
	go func() {
		_, err := got.ReadFrom(r)
		rErr <- err
	}()

	require.NoError(t, <-wErr)
	require.NoError(t, <-rErr)
	assert.Equal(t, c.Ops(), got.Ops())
}
