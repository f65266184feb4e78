// page.go - One b-tree page: raw bytes, header and cell pointers
package page

import (
	"fmt"

	"github.com/wilhasse/go-sqlitefile/format"
)

type Page struct {
	No           uint32
	Data         []byte // full page bytes, page-relative offsets index into it
	HeaderOffset int    // 100 on page 1, 0 elsewhere
	Header       Header
	CellPointers []uint16
}

// HeaderOffsetFor returns where the b-tree header starts on page no.
func HeaderOffsetFor(no uint32) int {
	if no == 1 {
		return format.FileHeaderSize
	}
	return 0
}

func NewPage(no uint32, data []byte) (*Page, error) {
	off := HeaderOffsetFor(no)
	h, err := ParseHeader(data, off)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", no, err)
	}
	ptrs, err := ReadCellPointers(data, off+h.Size(), h.CellCount)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", no, err)
	}
	return &Page{No: no, Data: data, HeaderOffset: off, Header: h, CellPointers: ptrs}, nil
}

func (p *Page) Type() format.PageType { return p.Header.Type }
func (p *Page) CellCount() int        { return int(p.Header.CellCount) }
