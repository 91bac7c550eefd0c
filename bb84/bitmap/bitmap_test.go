package bitmap

import (
	"testing"
)

func mustDense(t *testing.T, s string) Dense {
	d, err := FromString(s)
	if err != nil {
		t.Fatalf("bugged test setup: %v", err)
	}
	return d
}

func TestFromString(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		eout string
		eErr bool
	}{
		{name: "empty", in: "", eout: ""},
		{name: "plain", in: "0110", eout: "0110"},
		{name: "spaced", in: "0110 1", eout: "01101"},
		{name: "multibyte", in: "1111 0000 101", eout: "11110000101"},
		{name: "bad rune", in: "01x", eErr: true},
		{name: "digit two", in: "2", eErr: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d, err := FromString(tc.in)
			if tc.eErr {
				if err == nil {
					t.Fatalf("FromString(%q) returned nil error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := d.String(); got != tc.eout {
				t.Errorf("FromString(%q).String() == %q, want %q", tc.in, got, tc.eout)
			}
		})
	}
}

func TestCountOnes(t *testing.T) {
	tcs := []struct {
		name string
		data Dense
		eout int
	}{
		{"short", mustDense(t, "101"), 2},
		{"empty", mustDense(t, ""), 0},
		{"multibyte one", mustDense(t, "1111 1111 11"), 10},
		{"multibyte two", mustDense(t, "1011 1011 10"), 7},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out := CountOnes(tc.data)
			if out != tc.eout {
				t.Errorf("CountOnes(%v) == %v, want %v", tc.data.bits, out, tc.eout)
			}
		})
	}
}

func TestBytesFor(t *testing.T) {
	for bits, want := range map[int]int{0: 0, 1: 1, 8: 1, 9: 2, 16: 2} {
		if got := BytesFor(bits); got != want {
			t.Errorf("BytesFor(%d) == %d, want %d", bits, got, want)
		}
	}
}
