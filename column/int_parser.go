// int_parser.go - Parser for NULL and integer serial types
package column

// IntParser handles codes 0 through 6 plus the constants 8 and 9.
type IntParser struct {
	BaseParser
}

func (p *IntParser) Parse(input []byte, offset int, st SerialType) (Value, int, error) {
	switch st {
	case SerialNull:
		return Null(), 0, nil
	case SerialZero:
		return Int(0), 0, nil
	case SerialOne:
		return Int(1), 0, nil
	}
	width, err := st.Width()
	if err != nil {
		return Value{}, 0, err
	}
	v, err := p.readInt(input, offset, width)
	if err != nil {
		return Value{}, 0, err
	}
	return Int(v), width, nil
}
