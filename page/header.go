// header.go - B-tree page header parsing
package page

import (
	"errors"
	"fmt"

	"github.com/wilhasse/go-sqlitefile/format"
)

// ErrUnsupportedPageType marks a page whose cells this package will not decode.
var ErrUnsupportedPageType = errors.New("unsupported page type")

// 8-byte leaf / 12-byte interior b-tree page header
type Header struct {
	Type             format.PageType
	FirstFreeblock   uint16
	CellCount        uint16
	ContentStart     int // 0 on disk means 65536
	FragmentedBytes  uint8
	RightMostPointer uint32 // interior pages only
}

func (h Header) IsLeaf() bool { return h.Type.IsLeaf() }

// Size is the number of header bytes preceding the cell-pointer array.
func (h Header) Size() int { return h.Type.HeaderSize() }

func ParseHeader(p []byte, off int) (Header, error) {
	if off < 0 || off+format.LeafHeaderSize > len(p) {
		return Header{}, fmt.Errorf("page header at %d: %w", off, format.ErrOutOfBounds)
	}
	t := format.PageType(p[off])
	if !t.Valid() {
		return Header{}, fmt.Errorf("%w: 0x%02x at %d", ErrUnsupportedPageType, p[off], off)
	}
	free, _ := format.Be16(p, off+1)
	cells, _ := format.Be16(p, off+3)
	start, _ := format.Be16(p, off+5)
	h := Header{
		Type:            t,
		FirstFreeblock:  free,
		CellCount:       cells,
		ContentStart:    int(start),
		FragmentedBytes: p[off+7],
	}
	if start == 0 {
		h.ContentStart = format.MaxPageSize
	}
	if !t.IsLeaf() {
		right, err := format.Be32(p, off+8)
		if err != nil {
			return Header{}, fmt.Errorf("right-most pointer: %w", err)
		}
		h.RightMostPointer = right
	}
	return h, nil
}

// RequireLeaf fails with ErrUnsupportedPageType unless cells on the page are
// decodable row data.
func (h Header) RequireLeaf() error {
	if !h.IsLeaf() {
		return fmt.Errorf("%w: %s pages hold child pointers", ErrUnsupportedPageType, h.Type)
	}
	return nil
}
