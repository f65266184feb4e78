// parser.go - Column parser interface and base implementation
package column

import (
	"github.com/wilhasse/go-sqlitefile/format"
)

// Parser decodes the content bytes of one column.
type Parser interface {
	// Parse reads the column at offset and reports the bytes consumed.
	Parse(input []byte, offset int, st SerialType) (value Value, bytesRead int, err error)

	// Skip reports the bytes the column occupies without decoding it.
	Skip(st SerialType) (bytesRead int, err error)
}

// BaseParser provides common functionality for column parsers
type BaseParser struct{}

func (p *BaseParser) readBytes(input []byte, offset, length int) ([]byte, error) {
	return format.Bytes(input, offset, length)
}

func (p *BaseParser) readInt(input []byte, offset, width int) (int64, error) {
	return format.BeInt(input, offset, width)
}

func (p *BaseParser) readFloat64(input []byte, offset int) (float64, error) {
	return format.BeFloat64(input, offset)
}

func (p *BaseParser) Skip(st SerialType) (int, error) {
	return st.Width()
}
