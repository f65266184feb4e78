package dbtest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	LeafTable     byte = 0x0d
	LeafIndex     byte = 0x0a
	InteriorTable byte = 0x05
	InteriorIndex byte = 0x02
)

// Builder assembles a database file page by page. Page 1 is the schema
// page; every other page is added explicitly or by AddTable.
type Builder struct {
	PageSize     int
	TextEncoding uint32
	schema       [][]byte
	pages        [][]byte
}

func New(pageSize int) *Builder {
	return &Builder{PageSize: pageSize, TextEncoding: 1}
}

// AddTable adds a leaf table page holding rows (rowids from 1) and a schema
// row pointing at it. It returns the root page number.
func (b *Builder) AddTable(name, sql string, rows ...[]interface{}) uint32 {
	cells := make([][]byte, len(rows))
	for i, r := range rows {
		cells[i] = TableLeafCell(int64(i+1), EncodeRecord(r...))
	}
	root := b.AddPage(b.Page(0, LeafTable, cells))
	b.AddSchemaRow("table", name, name, int64(root), sql)
	return root
}

// AddSchemaRow appends a schema row on page 1.
func (b *Builder) AddSchemaRow(values ...interface{}) {
	b.AddSchemaCell(TableLeafCell(int64(len(b.schema)+1), EncodeRecord(values...)))
}

// AddSchemaCell appends a raw cell on page 1.
func (b *Builder) AddSchemaCell(cell []byte) {
	b.schema = append(b.schema, cell)
}

// AddPage appends a page and returns its number.
func (b *Builder) AddPage(p []byte) uint32 {
	b.pages = append(b.pages, p)
	return uint32(len(b.pages) + 1)
}

// Page lays out a b-tree page: header at headerOffset, pointers after it
// in the given order, cell bodies packed from the end of the page.
func (b *Builder) Page(headerOffset int, typ byte, cells [][]byte) []byte {
	p := make([]byte, b.PageSize)
	hsize := 8
	if typ == InteriorTable || typ == InteriorIndex {
		hsize = 12
	}
	p[headerOffset] = typ
	binary.BigEndian.PutUint16(p[headerOffset+3:], uint16(len(cells)))
	end := len(p)
	for i, c := range cells {
		end -= len(c)
		copy(p[end:], c)
		binary.BigEndian.PutUint16(p[headerOffset+hsize+2*i:], uint16(end))
	}
	binary.BigEndian.PutUint16(p[headerOffset+5:], uint16(end))
	return p
}

// Bytes returns the whole file.
func (b *Builder) Bytes() []byte {
	page1 := b.Page(100, LeafTable, b.schema)
	copy(page1, FileHeader(b.PageSize, uint32(len(b.pages)+1), b.TextEncoding))
	out := page1
	for _, p := range b.pages {
		out = append(out, p...)
	}
	return out
}

// WriteFile writes the database to a temporary file and returns its path.
func (b *Builder) WriteFile(t testing.TB) string {
	return WriteFile(t, b.Bytes())
}

func WriteFile(t testing.TB, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// FileHeader returns a 100-byte file header.
func FileHeader(pageSize int, pageCount uint32, encoding uint32) []byte {
	h := make([]byte, 100)
	copy(h, "SQLite format 3\x00")
	raw := uint16(pageSize)
	if pageSize == 65536 {
		raw = 1
	}
	binary.BigEndian.PutUint16(h[16:], raw)
	h[18], h[19] = 1, 1
	h[21], h[22], h[23] = 64, 32, 32
	binary.BigEndian.PutUint32(h[28:], pageCount)
	binary.BigEndian.PutUint32(h[44:], 4)
	binary.BigEndian.PutUint32(h[56:], encoding)
	return h
}
