// float_parser.go - Parser for the 8-byte IEEE-754 serial type
package column

type FloatParser struct {
	BaseParser
}

func (p *FloatParser) Parse(input []byte, offset int, st SerialType) (Value, int, error) {
	f, err := p.readFloat64(input, offset)
	if err != nil {
		return Value{}, 0, err
	}
	return Float(f), 8, nil
}
