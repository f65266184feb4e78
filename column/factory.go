// factory.go - Factory for getting appropriate column parser
package column

import "github.com/wilhasse/go-sqlitefile/format"

var (
	intParser   = &IntParser{}
	floatParser = &FloatParser{}
	textParsers = map[format.TextEncoding]*StringParser{
		format.EncodingUTF8:    NewStringParser(format.EncodingUTF8),
		format.EncodingUTF16LE: NewStringParser(format.EncodingUTF16LE),
		format.EncodingUTF16BE: NewStringParser(format.EncodingUTF16BE),
	}
)

// GetParser returns the parser for st, or nil for reserved codes.
func GetParser(st SerialType, enc format.TextEncoding) Parser {
	kind, err := st.Kind()
	if err != nil {
		return nil
	}
	switch kind {
	case KindNull, KindInt:
		return intParser
	case KindFloat:
		return floatParser
	default:
		if p, ok := textParsers[enc]; ok {
			return p
		}
		return textParsers[format.EncodingUTF8]
	}
}

// ParseColumn decodes the column of type st at offset.
func ParseColumn(input []byte, offset int, st SerialType, enc format.TextEncoding) (Value, int, error) {
	parser := GetParser(st, enc)
	if parser == nil {
		_, err := st.Kind()
		return Value{}, 0, err
	}
	return parser.Parse(input, offset, st)
}

// SkipColumn reports the width of a column of type st without decoding it.
func SkipColumn(st SerialType) (int, error) {
	parser := GetParser(st, format.EncodingUTF8)
	if parser == nil {
		_, err := st.Kind()
		return 0, err
	}
	return parser.Skip(st)
}
