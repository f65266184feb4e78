// serial.go - Record serial type codes
package column

import (
	"errors"
	"fmt"

	"github.com/wilhasse/go-sqlitefile/format"
)

// ErrReservedSerialType is returned for codes 10 and 11.
var ErrReservedSerialType = errors.New("reserved serial type")

// SerialType is the varint in a record header that selects a column's
// storage class and width.
type SerialType uint64

const (
	SerialNull    SerialType = 0
	SerialInt8    SerialType = 1
	SerialInt16   SerialType = 2
	SerialInt24   SerialType = 3
	SerialInt32   SerialType = 4
	SerialInt48   SerialType = 5
	SerialInt64   SerialType = 6
	SerialFloat64 SerialType = 7
	SerialZero    SerialType = 8
	SerialOne     SerialType = 9
	serialBlobMin SerialType = 12
	serialTextMin SerialType = 13
)

// Kind returns the storage class; reserved codes report an error.
func (st SerialType) Kind() (Kind, error) {
	switch {
	case st == SerialNull:
		return KindNull, nil
	case st <= SerialInt64, st == SerialZero, st == SerialOne:
		return KindInt, nil
	case st == SerialFloat64:
		return KindFloat, nil
	case st >= serialBlobMin && st%2 == 0:
		return KindBlob, nil
	case st >= serialTextMin:
		return KindText, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrReservedSerialType, uint64(st))
}

// Width returns the number of content bytes the column occupies.
func (st SerialType) Width() (int, error) {
	switch {
	case st == SerialNull, st == SerialZero, st == SerialOne:
		return 0, nil
	case st <= SerialInt32:
		return int(st), nil
	case st == SerialInt48:
		return 6, nil
	case st == SerialInt64, st == SerialFloat64:
		return 8, nil
	case st >= serialBlobMin && st%2 == 0:
		return variableWidth(st, serialBlobMin)
	case st >= serialTextMin:
		return variableWidth(st, serialTextMin)
	}
	return 0, fmt.Errorf("%w: %d", ErrReservedSerialType, uint64(st))
}

// Columns larger than a page would live on overflow pages, which are never
// followed.
func variableWidth(st, base SerialType) (int, error) {
	n := uint64(st-base) / 2
	if n > format.MaxPageSize {
		return 0, fmt.Errorf("serial type %d: %d bytes exceeds a page: %w", uint64(st), n, format.ErrOutOfBounds)
	}
	return int(n), nil
}

// SerialTypeFor returns the code for a blob or text column of n bytes.
func SerialTypeFor(k Kind, n int) SerialType {
	if k == KindBlob {
		return serialBlobMin + SerialType(2*n)
	}
	return serialTextMin + SerialType(2*n)
}
