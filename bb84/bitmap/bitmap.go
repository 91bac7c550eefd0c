// Package bitmap provides utilities for operating on densely-packed arrays of
// booleans, e.g. the bit and basis registers of a BB84 preparation.
package bitmap

import (
	"fmt"
	"math/bits"
	"strings"
)

const byteSize = 8

// Empty returns an empty, dense bit array.
func Empty() Dense {
	return Dense{}
}

// FromString converts a string of '1's and '0's to a Dense. Spaces are
// ignored, so "0110 1" and "01101" describe the same bitmap.
func FromString(s string) (Dense, error) {
	d := Dense{}
	for _, c := range s {
		switch c {
		case '1':
			d.AppendBit(true)
		case '0':
			d.AppendBit(false)
		case ' ':
			continue
		default:
			return Dense{}, fmt.Errorf("invalid bitmap string rep: %q", s)
		}
	}
	return d, nil
}

// String renders d as a string of '1's and '0's, first bit leftmost.
func (d Dense) String() string {
	var sb strings.Builder
	sb.Grow(d.len)
	for i := 0; i < d.len; i++ {
		if d.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// CountOnes returns the total number of bits set in d.
func CountOnes(d Dense) int {
	var sum int
	for i := 0; i < d.SizeBytes(); i++ {
		b := d.bits[i]
		if tail := d.len - i*byteSize; tail < byteSize {
			// The last byte may carry stale bits past d.len.
			b &= byte(1)<<tail - 1
		}
		sum += bits.OnesCount8(b)
	}
	return sum
}

// BytesFor returns the number of bytes necessary to hold the provided number of
// bits.
func BytesFor(bits int) int {
	return (bits + byteSize - 1) / byteSize
}
