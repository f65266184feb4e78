// cell.go - Leaf cell decoding
package record

import (
	"fmt"

	"github.com/wilhasse/go-sqlitefile/format"
	"github.com/wilhasse/go-sqlitefile/page"
)

// Cell is one leaf entry: payload length, row key (table leaves only) and
// the decoded record.
type Cell struct {
	Offset      int // page-relative start of the cell
	PayloadSize uint64
	RowID       int64
	HasRowID    bool
	Record      Record
}

// DecodeCell decodes cell i of a leaf page.
func (d *Decoder) DecodeCell(pg *page.Page, i int) (Cell, error) {
	if err := pg.Header.RequireLeaf(); err != nil {
		return Cell{}, fmt.Errorf("page %d: %w", pg.No, err)
	}
	if i < 0 || i >= len(pg.CellPointers) {
		return Cell{}, fmt.Errorf("cell %d of %d on page %d: %w", i, len(pg.CellPointers), pg.No, format.ErrOutOfBounds)
	}
	off := int(pg.CellPointers[i])
	cell := Cell{Offset: off}

	payload, n, err := d.varint(pg.Data, off)
	if err != nil {
		return Cell{}, fmt.Errorf("page %d cell %d payload size: %w", pg.No, i, err)
	}
	cell.PayloadSize = payload
	cur := off + n

	if pg.Type().HasRowID() {
		rowid, n, err := d.varint(pg.Data, cur)
		if err != nil {
			return Cell{}, fmt.Errorf("page %d cell %d rowid: %w", pg.No, i, err)
		}
		cell.RowID = int64(rowid)
		cell.HasRowID = true
		cur += n
	}

	// Payloads larger than the rest of the page continue on overflow pages,
	// which are not followed.
	if payload > uint64(len(pg.Data)-cur) {
		return Cell{}, fmt.Errorf("page %d cell %d payload of %d bytes spills past the page: %w",
			pg.No, i, payload, format.ErrOutOfBounds)
	}

	rec, _, err := d.DecodeRecord(pg.Data, cur)
	if err != nil {
		return Cell{}, fmt.Errorf("page %d cell %d: %w", pg.No, i, err)
	}
	cell.Record = rec
	return cell, nil
}

// DecodeCells decodes every cell on a leaf page in cell-pointer order.
func (d *Decoder) DecodeCells(pg *page.Page) ([]Cell, error) {
	if err := pg.Header.RequireLeaf(); err != nil {
		return nil, fmt.Errorf("page %d: %w", pg.No, err)
	}
	cells := make([]Cell, 0, len(pg.CellPointers))
	for i := range pg.CellPointers {
		c, err := d.DecodeCell(pg, i)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}
