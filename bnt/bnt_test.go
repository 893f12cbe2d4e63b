package bnt

import "testing"

func TestEncodeDefiniteRoundTrip(t *testing.T) {
	seq := "ACGTACGT"
	chunks := make([]uint64, 1)
	PackDefinite([]byte(seq), chunks)
	for i := 0; i < len(seq); i++ {
		got := UnpackDefiniteBase(chunks, i)
		if got != seq[i] {
			t.Fatalf("position %d: got %q want %q", i, got, seq[i])
		}
	}
}

func TestUFoldsToT(t *testing.T) {
	if Base2Bnt['U'] != Base2Bnt['T'] {
		t.Fatalf("U must encode the same as T")
	}
}

func TestIsDefinite(t *testing.T) {
	for _, c := range []byte("ACGTU") {
		if !IsDefinite(c) {
			t.Fatalf("%q should be definite", c)
		}
	}
	for _, c := range []byte("NRYSWKMBDHV") {
		if IsDefinite(c) {
			t.Fatalf("%q should not be definite", c)
		}
	}
}

func TestIUPACMaskRoundTrip(t *testing.T) {
	cases := []struct {
		code       byte
		a, c, g, t bool
	}{
		{'A', true, false, false, false},
		{'N', true, true, true, true},
		{'R', true, false, true, false},
		{'Y', false, true, false, true},
	}
	for _, tc := range cases {
		mask, ok := IUPACMask(tc.code)
		if !ok {
			t.Fatalf("code %q should be recognized", tc.code)
		}
		var want uint8
		if tc.a {
			want |= 1 << 0
		}
		if tc.c {
			want |= 1 << 1
		}
		if tc.g {
			want |= 1 << 2
		}
		if tc.t {
			want |= 1 << 3
		}
		if mask != want {
			t.Fatalf("code %q: mask %#x want %#x", tc.code, mask, want)
		}
	}
}

func TestDecodeAmbiguousSingleBaseReturnsLetter(t *testing.T) {
	if got := DecodeAmbiguous(true, false, false, false); got != 'A' {
		t.Fatalf("got %q want A", got)
	}
	if got := DecodeAmbiguous(false, false, false, true); got != 'T' {
		t.Fatalf("got %q want T", got)
	}
}

func TestDecodeAmbiguousMultiBase(t *testing.T) {
	if got := DecodeAmbiguous(true, false, true, false); got != 'R' {
		t.Fatalf("got %q want R", got)
	}
	if got := DecodeAmbiguous(true, true, true, true); got != 'N' {
		t.Fatalf("got %q want N", got)
	}
}
