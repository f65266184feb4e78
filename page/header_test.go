package page_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhasse/go-sqlitefile/format"
	"github.com/wilhasse/go-sqlitefile/internal/dbtest"
	"github.com/wilhasse/go-sqlitefile/page"
)

func TestParseHeaderLeaf(t *testing.T) {
	b := dbtest.New(512)
	p := b.Page(0, dbtest.LeafTable, [][]byte{{1, 2, 3}, {4, 5}})

	h, err := page.ParseHeader(p, 0)
	require.NoError(t, err)
	assert.Equal(t, format.PageTypeLeafTable, h.Type)
	assert.Equal(t, uint16(2), h.CellCount)
	assert.Equal(t, 512-5, h.ContentStart)
	assert.True(t, h.IsLeaf())
	assert.Equal(t, 8, h.Size())
	assert.NoError(t, h.RequireLeaf())
}

func TestParseHeaderAtOffset(t *testing.T) {
	b := dbtest.New(1024)
	p := b.Page(100, dbtest.LeafTable, [][]byte{{9}, {9}, {9}})

	h, err := page.ParseHeader(p, 100)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), h.CellCount)

	// Reading at 0 lands inside the zeroed file-header area.
	_, err = page.ParseHeader(p, 0)
	assert.ErrorIs(t, err, page.ErrUnsupportedPageType)
}

func TestParseHeaderInterior(t *testing.T) {
	b := dbtest.New(512)
	p := b.Page(0, dbtest.InteriorTable, [][]byte{{0, 0, 0, 2, 5}})
	binary.BigEndian.PutUint32(p[8:], 7)

	h, err := page.ParseHeader(p, 0)
	require.NoError(t, err)
	assert.False(t, h.IsLeaf())
	assert.Equal(t, 12, h.Size())
	assert.Equal(t, uint32(7), h.RightMostPointer)
	assert.ErrorIs(t, h.RequireLeaf(), page.ErrUnsupportedPageType)
}

func TestParseHeaderUnknownType(t *testing.T) {
	p := make([]byte, 512)
	for _, typ := range []byte{0x00, 0x01, 0x0b, 0x0e, 0xff} {
		p[0] = typ
		_, err := page.ParseHeader(p, 0)
		assert.ErrorIs(t, err, page.ErrUnsupportedPageType, "type 0x%02x", typ)
	}
}

func TestParseHeaderShort(t *testing.T) {
	_, err := page.ParseHeader([]byte{0x0d, 0, 0}, 0)
	assert.ErrorIs(t, err, format.ErrOutOfBounds)

	_, err = page.ParseHeader([]byte{0x05, 0, 0, 0, 0, 0, 0, 0, 0}, 0)
	assert.ErrorIs(t, err, format.ErrOutOfBounds)
}

func TestReadCellPointersKeepsDiskOrder(t *testing.T) {
	p := make([]byte, 512)
	p[0] = byte(format.PageTypeLeafTable)
	binary.BigEndian.PutUint16(p[3:], 3)
	for i, off := range []uint16{400, 100, 300} {
		binary.BigEndian.PutUint16(p[8+2*i:], off)
	}

	ptrs, err := page.ReadCellPointers(p, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint16{400, 100, 300}, ptrs)
}

func TestReadCellPointersBounds(t *testing.T) {
	p := make([]byte, 16)
	_, err := page.ReadCellPointers(p, 8, 5)
	assert.ErrorIs(t, err, format.ErrOutOfBounds)

	binary.BigEndian.PutUint16(p[8:], 600)
	_, err = page.ReadCellPointers(p, 8, 1)
	assert.ErrorIs(t, err, format.ErrOutOfBounds)
}

func TestReadCellPointersRejectsHeaderOverlap(t *testing.T) {
	p := make([]byte, 512)
	// Two pointers end the array at 12; smaller offsets hit the header or the array.
	for _, bad := range []uint16{0, 3, 8, 11} {
		binary.BigEndian.PutUint16(p[8:], 200)
		binary.BigEndian.PutUint16(p[10:], bad)
		_, err := page.ReadCellPointers(p, 8, 2)
		assert.ErrorIs(t, err, format.ErrOutOfBounds, "pointer %d", bad)
	}

	binary.BigEndian.PutUint16(p[10:], 12)
	ptrs, err := page.ReadCellPointers(p, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint16{200, 12}, ptrs)
}

func TestNewPage(t *testing.T) {
	b := dbtest.New(512)
	cells := [][]byte{{1}, {2}}

	pg, err := page.NewPage(1, b.Page(100, dbtest.LeafTable, cells))
	require.NoError(t, err)
	assert.Equal(t, 100, pg.HeaderOffset)
	assert.Equal(t, 2, pg.CellCount())
	assert.Len(t, pg.CellPointers, pg.CellCount())

	pg, err = page.NewPage(2, b.Page(0, dbtest.LeafTable, cells))
	require.NoError(t, err)
	assert.Equal(t, 0, pg.HeaderOffset)
	assert.Equal(t, []uint16{511, 510}, pg.CellPointers)
}
