// endian.go - Big-endian byte reading utilities
package format

import (
	"encoding/binary"
	"fmt"
	"math"
)

func Be16(b []byte, off int) (uint16, error) {
	if off < 0 || off > len(b)-2 {
		return 0, fmt.Errorf("be16 at %d: %w", off, ErrOutOfBounds)
	}
	return binary.BigEndian.Uint16(b[off : off+2]), nil
}

func Be32(b []byte, off int) (uint32, error) {
	if off < 0 || off > len(b)-4 {
		return 0, fmt.Errorf("be32 at %d: %w", off, ErrOutOfBounds)
	}
	return binary.BigEndian.Uint32(b[off : off+4]), nil
}

func Be64(b []byte, off int) (uint64, error) {
	if off < 0 || off > len(b)-8 {
		return 0, fmt.Errorf("be64 at %d: %w", off, ErrOutOfBounds)
	}
	return binary.BigEndian.Uint64(b[off : off+8]), nil
}

// BeInt reads a two's-complement big-endian integer of 1..8 bytes and
// sign-extends it to 64 bits.
func BeInt(b []byte, off, width int) (int64, error) {
	if width < 1 || width > 8 {
		return 0, fmt.Errorf("int width %d not supported", width)
	}
	raw, err := Bytes(b, off, width)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, c := range raw {
		v = v<<8 | uint64(c)
	}
	shift := uint(64 - 8*width)
	return int64(v<<shift) >> shift, nil
}

// BeFloat64 reads an 8-byte IEEE-754 double.
func BeFloat64(b []byte, off int) (float64, error) {
	v, err := Be64(b, off)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Bytes returns b[off:off+n] without copying. off+n is never computed, so
// huge n cannot wrap past the check.
func Bytes(b []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off {
		return nil, fmt.Errorf("%d bytes at %d (len %d): %w", n, off, len(b), ErrOutOfBounds)
	}
	return b[off : off+n], nil
}
