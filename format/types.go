// types.go - Sizes and constants of the database file format
package format

// Sizes and constants
const (
	FileHeaderSize = 100 // precedes page 1's b-tree header
	MinPageSize    = 512
	MaxPageSize    = 65536

	LeafHeaderSize     = 8
	InteriorHeaderSize = 12 // leaf header + 4B right-most child pointer
	CellPointerSize    = 2

	MaxVarintLen = 9
)

// Magic is the 16-byte string every database file starts with.
var Magic = []byte("SQLite format 3\x00")

// Page types (b-tree flag byte)
type PageType uint8

const (
	PageTypeInteriorIndex PageType = 0x02
	PageTypeInteriorTable PageType = 0x05
	PageTypeLeafIndex     PageType = 0x0a
	PageTypeLeafTable     PageType = 0x0d
)

func (t PageType) Valid() bool {
	switch t {
	case PageTypeInteriorIndex, PageTypeInteriorTable, PageTypeLeafIndex, PageTypeLeafTable:
		return true
	}
	return false
}

func (t PageType) IsLeaf() bool {
	return t == PageTypeLeafIndex || t == PageTypeLeafTable
}

// HasRowID reports whether cells of this page carry an integer row key.
func (t PageType) HasRowID() bool {
	return t == PageTypeLeafTable || t == PageTypeInteriorTable
}

// HeaderSize is the b-tree header length for the page type.
func (t PageType) HeaderSize() int {
	if t.IsLeaf() {
		return LeafHeaderSize
	}
	return InteriorHeaderSize
}

func (t PageType) String() string {
	switch t {
	case PageTypeInteriorIndex:
		return "INTERIOR_INDEX"
	case PageTypeInteriorTable:
		return "INTERIOR_TABLE"
	case PageTypeLeafIndex:
		return "LEAF_INDEX"
	case PageTypeLeafTable:
		return "LEAF_TABLE"
	default:
		return "UNKNOWN"
	}
}

// TextEncoding is the database text encoding stored at header offset 56.
type TextEncoding uint32

const (
	EncodingUTF8    TextEncoding = 1
	EncodingUTF16LE TextEncoding = 2
	EncodingUTF16BE TextEncoding = 3
)

func (e TextEncoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16LE:
		return "UTF-16le"
	case EncodingUTF16BE:
		return "UTF-16be"
	default:
		return "unknown"
	}
}
