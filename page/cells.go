// cells.go - Cell pointer array
package page

import (
	"fmt"

	"github.com/wilhasse/go-sqlitefile/format"
)

// ReadCellPointers reads n 2-byte page-relative cell offsets starting at off,
// the first byte after the b-tree header. Order is on-disk order. Cells lie
// between the end of the pointer array and the end of the page.
func ReadCellPointers(p []byte, off int, n uint16) ([]uint16, error) {
	arrayEnd := off + int(n)*format.CellPointerSize
	ptrs := make([]uint16, n)
	for i := range ptrs {
		v, err := format.Be16(p, off+i*format.CellPointerSize)
		if err != nil {
			return nil, fmt.Errorf("cell pointer %d: %w", i, err)
		}
		if int(v) >= len(p) {
			return nil, fmt.Errorf("cell pointer %d = %d past page end %d: %w", i, v, len(p), format.ErrOutOfBounds)
		}
		if int(v) < arrayEnd {
			return nil, fmt.Errorf("cell pointer %d = %d inside page header or pointer array ending at %d: %w", i, v, arrayEnd, format.ErrOutOfBounds)
		}
		ptrs[i] = v
	}
	return ptrs, nil
}
