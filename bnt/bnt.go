// Package bnt holds the 2-bit base encoding and IUPAC ambiguity tables
// shared by the split-node graph's bit-packed sequence store.
package bnt

import "log"

// Base is a definite nucleotide code in [0,4): A=0, C=1, G=2, T=3.
type Base uint8

const (
	A Base = 0
	C Base = 1
	G Base = 2
	T Base = 3
)

// BaseLetters maps a definite code back to its ASCII letter.
var BaseLetters = [4]byte{'A', 'C', 'G', 'T'}

// Base2Bnt maps an input byte to its 2-bit code, or -1 if the byte is not
// a definite base (U is folded onto T; the caller upper-cases lower-case
// letters before looking them up here).
var Base2Bnt [256]int8

func init() {
	for i := range Base2Bnt {
		Base2Bnt[i] = -1
	}
	Base2Bnt['A'] = int8(A)
	Base2Bnt['C'] = int8(C)
	Base2Bnt['G'] = int8(G)
	Base2Bnt['T'] = int8(T)
	Base2Bnt['U'] = int8(T)
}

// IsDefinite reports whether c (upper-case) is one of A/C/G/T/U.
func IsDefinite(c byte) bool {
	return Base2Bnt[c] >= 0
}

// EncodeDefinite returns the 2-bit code for an upper-case A/C/G/T/U byte.
// It is a programming error to call this on a non-definite byte.
func EncodeDefinite(c byte) Base {
	v := Base2Bnt[c]
	if v < 0 {
		log.Fatalf("[EncodeDefinite] byte %q is not a definite base\n", c)
	}
	return Base(v)
}

// iupacMasks is the standard IUPAC ambiguity table, each entry a 4-bit
// mask over {A,C,G,T} in that bit order (bit0=A, bit1=C, bit2=G, bit3=T).
var iupacMasks = map[byte]uint8{
	'A': 1 << 0,
	'C': 1 << 1,
	'G': 1 << 2,
	'T': 1 << 3,
	'U': 1 << 3,
	'R': 1<<0 | 1<<2,
	'Y': 1<<1 | 1<<3,
	'S': 1<<2 | 1<<1,
	'W': 1<<0 | 1<<3,
	'K': 1<<2 | 1<<3,
	'M': 1<<0 | 1<<1,
	'B': 1<<1 | 1<<2 | 1<<3,
	'D': 1<<0 | 1<<2 | 1<<3,
	'H': 1<<0 | 1<<1 | 1<<3,
	'V': 1<<0 | 1<<1 | 1<<2,
	'N': 1<<0 | 1<<1 | 1<<2 | 1<<3,
}

// IUPACMask returns the 4-bit {A,C,G,T} mask for an upper-case IUPAC code,
// and false if c is not a recognized code at all.
func IUPACMask(c byte) (mask uint8, ok bool) {
	m, ok := iupacMasks[c]
	return m, ok
}

// DecodeAmbiguous turns an {A,C,G,T} admission set back into the narrowest
// IUPAC letter that represents it. At least one of a,c,g,t must be true;
// callers hold this as an invariant on ambiguous positions.
func DecodeAmbiguous(a, c, g, t bool) byte {
	var mask uint8
	if a {
		mask |= 1 << 0
	}
	if c {
		mask |= 1 << 1
	}
	if g {
		mask |= 1 << 2
	}
	if t {
		mask |= 1 << 3
	}
	if mask == 0 {
		log.Fatalf("[DecodeAmbiguous] empty admission set\n")
	}
	for letter, m := range iupacMasks {
		if m == mask && letter != 'U' {
			return letter
		}
	}
	log.Fatalf("[DecodeAmbiguous] mask %#x matches no IUPAC letter\n", mask)
	return 0
}

// BasesPerChunk is the number of 2-bit bases a single uint64 chunk holds.
const BasesPerChunk = 32

// PackDefinite 2-bit packs seq (already validated as all-definite and
// upper case by the caller; U is encoded as T) into chunks, BasesPerChunk
// bases per chunk, low position in the low bits of each chunk.
func PackDefinite(seq []byte, chunks []uint64) {
	for i := range chunks {
		chunks[i] = 0
	}
	for p, c := range seq {
		b := EncodeDefinite(c)
		chunk := p / BasesPerChunk
		shift := uint((p % BasesPerChunk) * 2)
		chunks[chunk] |= uint64(b) << shift
	}
}

// UnpackDefiniteBase returns the base letter stored at position p.
func UnpackDefiniteBase(chunks []uint64, p int) byte {
	chunk := p / BasesPerChunk
	shift := uint((p % BasesPerChunk) * 2)
	b := Base((chunks[chunk] >> shift) & 0x3)
	return BaseLetters[b]
}
