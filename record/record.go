// record.go - Record header and column decoding
package record

import (
	"errors"
	"fmt"

	"github.com/wilhasse/go-sqlitefile/column"
	"github.com/wilhasse/go-sqlitefile/format"
)

// ErrCorruptRecord is returned when a record header contradicts itself.
var ErrCorruptRecord = errors.New("corrupt record")

// Record is one decoded row payload: the header's serial types and one
// value per serial type, in column order.
type Record struct {
	HeaderSize  int
	SerialTypes []column.SerialType
	Values      []column.Value
}

// Column returns value i, or NULL when the record stops short of it.
func (r Record) Column(i int) column.Value {
	if i < 0 || i >= len(r.Values) {
		return column.Null()
	}
	return r.Values[i]
}

func (r Record) Len() int { return len(r.Values) }

// Decoder decodes cells and records with a fixed varint mode and text
// encoding.
type Decoder struct {
	varint format.VarintFunc
	enc    format.TextEncoding
}

func NewDecoder(mode format.VarintMode, enc format.TextEncoding) *Decoder {
	if enc == 0 {
		enc = format.EncodingUTF8
	}
	return &Decoder{varint: mode.Decoder(), enc: enc}
}

// DecodeRecord decodes the record starting at off and returns it together
// with the number of bytes it occupied.
func (d *Decoder) DecodeRecord(p []byte, off int) (Record, int, error) {
	hsize, n, err := d.varint(p, off)
	if err != nil {
		return Record{}, 0, fmt.Errorf("record header size: %w", err)
	}
	if hsize < uint64(n) {
		return Record{}, 0, fmt.Errorf("%w: header size %d smaller than its own varint", ErrCorruptRecord, hsize)
	}
	if hsize > uint64(len(p)-off) {
		return Record{}, 0, fmt.Errorf("record header of %d bytes at %d: %w", hsize, off, format.ErrOutOfBounds)
	}
	end := off + int(hsize)

	var types []column.SerialType
	for cur := off + n; cur < end; {
		st, n, err := d.varint(p, cur)
		if err != nil {
			return Record{}, 0, fmt.Errorf("serial type %d: %w", len(types), err)
		}
		cur += n
		if cur > end {
			return Record{}, 0, fmt.Errorf("%w: serial type %d overruns header", ErrCorruptRecord, len(types))
		}
		types = append(types, column.SerialType(st))
	}

	values := make([]column.Value, len(types))
	pos := end
	for i, st := range types {
		v, w, err := column.ParseColumn(p, pos, st, d.enc)
		if err != nil {
			return Record{}, 0, fmt.Errorf("column %d (type %d): %w", i, uint64(st), err)
		}
		values[i] = v
		pos += w
	}
	return Record{HeaderSize: int(hsize), SerialTypes: types, Values: values}, pos - off, nil
}
