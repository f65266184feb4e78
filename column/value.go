// value.go - Decoded column value
package column

import (
	"fmt"
	"strconv"
)

// Kind is the storage class of a decoded value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindText
	KindBlob
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindInt:
		return "INTEGER"
	case KindFloat:
		return "REAL"
	case KindText:
		return "TEXT"
	case KindBlob:
		return "BLOB"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", k)
	}
}

// Value holds exactly one of Int, Float, Text or Blob according to Kind.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Text  string
	Blob  []byte
}

func Null() Value            { return Value{Kind: KindNull} }
func Int(v int64) Value      { return Value{Kind: KindInt, Int: v} }
func Float(v float64) Value  { return Value{Kind: KindFloat, Float: v} }
func Text(v string) Value    { return Value{Kind: KindText, Text: v} }
func Blob(v []byte) Value    { return Value{Kind: KindBlob, Blob: v} }
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Any returns the value as nil, int64, float64, string or []byte.
func (v Value) Any() interface{} {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindText:
		return v.Text
	case KindBlob:
		return v.Blob
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindText:
		return v.Text
	case KindBlob:
		return fmt.Sprintf("x'%x'", v.Blob)
	default:
		return "?"
	}
}
