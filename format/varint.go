// varint.go - Variable-length integer decoding
package format

import "fmt"

// VarintFunc decodes one varint starting at off and returns the value and
// the number of bytes consumed.
type VarintFunc func(b []byte, off int) (uint64, int, error)

// Varint decodes a big-endian base-128 varint. Up to eight bytes carry 7 data
// bits each while their high bit is set; a ninth byte carries all 8 bits.
func Varint(b []byte, off int) (uint64, int, error) {
	var v uint64
	for i := 0; i < MaxVarintLen-1; i++ {
		if off+i < 0 || off+i >= len(b) {
			return 0, 0, fmt.Errorf("varint at %d after %d bytes: %w", off, i, ErrTruncatedInput)
		}
		c := b[off+i]
		v = v<<7 | uint64(c&0x7f)
		if c&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	last := off + MaxVarintLen - 1
	if last >= len(b) {
		return 0, 0, fmt.Errorf("varint at %d after %d bytes: %w", off, MaxVarintLen-1, ErrTruncatedInput)
	}
	return v<<8 | uint64(b[last]), MaxVarintLen, nil
}

// VarintAdditive sums the low 7 bits of every byte up to and including the
// first byte with the high bit clear. It agrees with Varint only for values
// below 128 and exists to read files the way older builds of this tool did.
func VarintAdditive(b []byte, off int) (uint64, int, error) {
	var v uint64
	for n := 0; ; n++ {
		if off+n < 0 || off+n >= len(b) {
			return 0, 0, fmt.Errorf("varint at %d after %d bytes: %w", off, n, ErrTruncatedInput)
		}
		c := b[off+n]
		v += uint64(c & 0x7f)
		if c&0x80 == 0 {
			return v, n + 1, nil
		}
	}
}

// VarintMode selects how varints are accumulated.
type VarintMode string

const (
	VarintSQLite   VarintMode = "sqlite"
	VarintLegacy   VarintMode = "additive"
	DefaultVarints            = VarintSQLite
)

func ParseVarintMode(s string) (VarintMode, error) {
	switch VarintMode(s) {
	case VarintSQLite, VarintLegacy:
		return VarintMode(s), nil
	case "":
		return DefaultVarints, nil
	}
	return "", fmt.Errorf("unknown varint mode %q", s)
}

// Decoder returns the decoding function for the mode.
func (m VarintMode) Decoder() VarintFunc {
	if m == VarintLegacy {
		return VarintAdditive
	}
	return Varint
}
