// string_parser.go - Parser for TEXT and BLOB serial types
package column

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/wilhasse/go-sqlitefile/format"
)

// StringParser handles text (odd codes >= 13) and blob (even codes >= 12).
// Text is transcoded from the database encoding when that is UTF-16.
type StringParser struct {
	BaseParser
	enc encoding.Encoding // nil for UTF-8
}

func NewStringParser(te format.TextEncoding) *StringParser {
	switch te {
	case format.EncodingUTF16LE:
		return &StringParser{enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}
	case format.EncodingUTF16BE:
		return &StringParser{enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	default:
		return &StringParser{}
	}
}

func (p *StringParser) Parse(input []byte, offset int, st SerialType) (Value, int, error) {
	kind, err := st.Kind()
	if err != nil {
		return Value{}, 0, err
	}
	width, err := st.Width()
	if err != nil {
		return Value{}, 0, err
	}
	data, err := p.readBytes(input, offset, width)
	if err != nil {
		return Value{}, 0, err
	}
	if kind == KindBlob {
		out := make([]byte, width)
		copy(out, data)
		return Blob(out), width, nil
	}
	if p.enc == nil {
		return Text(string(data)), width, nil
	}
	utf8, err := p.enc.NewDecoder().Bytes(data)
	if err != nil {
		return Value{}, 0, fmt.Errorf("decode text: %w", err)
	}
	return Text(string(utf8)), width, nil
}
