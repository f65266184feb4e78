// Package dbtest builds database files for tests: byte-exact files from
// hand-assembled pages, and real files written through a SQL driver.
package dbtest

import (
	"encoding/binary"
	"fmt"
	"math"
)

// PutVarint encodes v in the big-endian base-128 form, using all 8 bits of
// a ninth byte for values that need it.
func PutVarint(v uint64) []byte {
	if v&(uint64(0xff000000)<<32) != 0 {
		out := make([]byte, 9)
		out[8] = byte(v)
		v >>= 8
		for i := 7; i >= 0; i-- {
			out[i] = byte(v&0x7f) | 0x80
			v >>= 7
		}
		return out
	}
	n := 1
	for tmp := v >> 7; tmp > 0; tmp >>= 7 {
		n++
	}
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v & 0x7f)
		if i < n-1 {
			out[i] |= 0x80
		}
		v >>= 7
	}
	return out
}

// EncodeRecord builds a record payload. Accepted values: nil, int, int64,
// float64, string, []byte. Integers use the narrowest serial type.
func EncodeRecord(values ...interface{}) []byte {
	var types, body []byte
	for _, v := range values {
		st, content := encodeValue(v)
		types = append(types, PutVarint(st)...)
		body = append(body, content...)
	}
	// The header size counts its own varint.
	hsize := len(types) + 1
	if len(PutVarint(uint64(hsize))) > 1 {
		hsize++
	}
	out := append(PutVarint(uint64(hsize)), types...)
	return append(out, body...)
}

func encodeValue(v interface{}) (uint64, []byte) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case int:
		return encodeInt(int64(x))
	case int64:
		return encodeInt(x)
	case float64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, math.Float64bits(x))
		return 7, b
	case string:
		return uint64(13 + 2*len(x)), []byte(x)
	case []byte:
		return uint64(12 + 2*len(x)), x
	default:
		panic(fmt.Sprintf("dbtest: cannot encode %T", v))
	}
}

func encodeInt(v int64) (uint64, []byte) {
	switch {
	case v == 0:
		return 8, nil
	case v == 1:
		return 9, nil
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return 1, beInt(v, 1)
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return 2, beInt(v, 2)
	case v >= -1<<23 && v < 1<<23:
		return 3, beInt(v, 3)
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return 4, beInt(v, 4)
	case v >= -1<<47 && v < 1<<47:
		return 5, beInt(v, 6)
	default:
		return 6, beInt(v, 8)
	}
}

func beInt(v int64, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// TableLeafCell is payload size, rowid, payload.
func TableLeafCell(rowid int64, payload []byte) []byte {
	out := PutVarint(uint64(len(payload)))
	out = append(out, PutVarint(uint64(rowid))...)
	return append(out, payload...)
}

// IndexLeafCell is payload size, payload.
func IndexLeafCell(payload []byte) []byte {
	return append(PutVarint(uint64(len(payload))), payload...)
}
