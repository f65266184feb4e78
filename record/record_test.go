package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhasse/go-sqlitefile/column"
	"github.com/wilhasse/go-sqlitefile/format"
	"github.com/wilhasse/go-sqlitefile/internal/dbtest"
	"github.com/wilhasse/go-sqlitefile/page"
	"github.com/wilhasse/go-sqlitefile/record"
)

func sqliteDecoder() *record.Decoder {
	return record.NewDecoder(format.VarintSQLite, format.EncodingUTF8)
}

func TestDecodeRecord(t *testing.T) {
	payload := dbtest.EncodeRecord(nil, 0, 1, 42, -300, 1<<40, 2.5, "red", []byte{0xde, 0xad})
	buf := append([]byte{0xee, 0xee}, payload...)

	rec, n, err := sqliteDecoder().DecodeRecord(buf, 2)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, []column.SerialType{0, 8, 9, 1, 2, 5, 7, 19, 16}, rec.SerialTypes)
	assert.Equal(t, []column.Value{
		column.Null(),
		column.Int(0),
		column.Int(1),
		column.Int(42),
		column.Int(-300),
		column.Int(1 << 40),
		column.Float(2.5),
		column.Text("red"),
		column.Blob([]byte{0xde, 0xad}),
	}, rec.Values)
	assert.Equal(t, 10, rec.HeaderSize)
	assert.Equal(t, len(rec.SerialTypes), rec.Len())
}

func TestDecodeRecordTrailingColumnsReadNull(t *testing.T) {
	rec, _, err := sqliteDecoder().DecodeRecord(dbtest.EncodeRecord("a"), 0)
	require.NoError(t, err)
	assert.Equal(t, column.Text("a"), rec.Column(0))
	assert.True(t, rec.Column(3).IsNull())
	assert.True(t, rec.Column(-1).IsNull())
}

func TestDecodeRecordCorrupt(t *testing.T) {
	d := sqliteDecoder()

	// Header claims 0 bytes, smaller than its own size varint.
	_, _, err := d.DecodeRecord([]byte{0x00}, 0)
	assert.ErrorIs(t, err, record.ErrCorruptRecord)

	// Header size runs past the buffer.
	_, _, err = d.DecodeRecord([]byte{0x09, 0x01}, 0)
	assert.ErrorIs(t, err, format.ErrOutOfBounds)

	// Two-byte serial type straddles the header end.
	_, _, err = d.DecodeRecord([]byte{0x02, 0x81, 0x00, 0x00}, 0)
	assert.ErrorIs(t, err, record.ErrCorruptRecord)

	// Column content past the end.
	_, _, err = d.DecodeRecord([]byte{0x02, 0x06, 0x00}, 0)
	assert.ErrorIs(t, err, format.ErrOutOfBounds)

	// Reserved serial type.
	_, _, err = d.DecodeRecord([]byte{0x02, 0x0a}, 0)
	assert.ErrorIs(t, err, column.ErrReservedSerialType)

	// Truncated varint.
	_, _, err = d.DecodeRecord([]byte{0x80}, 0)
	assert.ErrorIs(t, err, format.ErrTruncatedInput)
}

func TestDecodeRecordHugeSerialType(t *testing.T) {
	d := sqliteDecoder()
	// 9-byte serial type 0xfffffffffffffffd: text of ~2^63 bytes.
	rec := []byte{0x0a, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfd, 'x'}
	assert.NotPanics(t, func() {
		_, _, err := d.DecodeRecord(rec, 0)
		assert.ErrorIs(t, err, format.ErrOutOfBounds)
	})

	// Same shape for a blob (even code).
	rec[9] = 0xfc
	assert.NotPanics(t, func() {
		_, _, err := d.DecodeRecord(rec, 0)
		assert.ErrorIs(t, err, format.ErrOutOfBounds)
	})
}

func TestDecodeCells(t *testing.T) {
	b := dbtest.New(512)
	cells := [][]byte{
		dbtest.TableLeafCell(5, dbtest.EncodeRecord("five")),
		dbtest.TableLeafCell(2, dbtest.EncodeRecord("two")),
		dbtest.TableLeafCell(300, dbtest.EncodeRecord("three hundred")),
	}
	pg, err := page.NewPage(2, b.Page(0, dbtest.LeafTable, cells))
	require.NoError(t, err)

	got, err := sqliteDecoder().DecodeCells(pg)
	require.NoError(t, err)
	require.Len(t, got, pg.CellCount())

	var ids []int64
	var names []string
	for _, c := range got {
		assert.True(t, c.HasRowID)
		ids = append(ids, c.RowID)
		names = append(names, c.Record.Column(0).Text)
	}
	assert.Equal(t, []int64{5, 2, 300}, ids)
	assert.Equal(t, []string{"five", "two", "three hundred"}, names)
	assert.Equal(t, uint64(len(dbtest.EncodeRecord("five"))), got[0].PayloadSize)
}

func TestDecodeIndexLeafCells(t *testing.T) {
	b := dbtest.New(512)
	pg, err := page.NewPage(2, b.Page(0, dbtest.LeafIndex, [][]byte{
		dbtest.IndexLeafCell(dbtest.EncodeRecord("apple", 3)),
	}))
	require.NoError(t, err)

	c, err := sqliteDecoder().DecodeCell(pg, 0)
	require.NoError(t, err)
	assert.False(t, c.HasRowID)
	assert.Equal(t, column.Text("apple"), c.Record.Column(0))
	assert.Equal(t, column.Int(3), c.Record.Column(1))
}

func TestDecodeCellRejectsInteriorPages(t *testing.T) {
	b := dbtest.New(512)
	pg, err := page.NewPage(2, b.Page(0, dbtest.InteriorTable, [][]byte{{0, 0, 0, 3, 0x01}}))
	require.NoError(t, err)

	_, err = sqliteDecoder().DecodeCells(pg)
	assert.ErrorIs(t, err, page.ErrUnsupportedPageType)
	_, err = sqliteDecoder().DecodeCell(pg, 0)
	assert.ErrorIs(t, err, page.ErrUnsupportedPageType)
}

func TestDecodeCellOverflowGuard(t *testing.T) {
	b := dbtest.New(512)
	big := dbtest.EncodeRecord(string(make([]byte, 600)))
	// Keep only what fits; the declared payload size still says 600+.
	cell := dbtest.TableLeafCell(1, big)[:400]
	pg, err := page.NewPage(2, b.Page(0, dbtest.LeafTable, [][]byte{cell}))
	require.NoError(t, err)

	_, err = sqliteDecoder().DecodeCell(pg, 0)
	assert.ErrorIs(t, err, format.ErrOutOfBounds)

	_, err = sqliteDecoder().DecodeCell(pg, 1)
	assert.ErrorIs(t, err, format.ErrOutOfBounds)
}

func TestAdditiveModeDiffersOnMultiByteRowIDs(t *testing.T) {
	b := dbtest.New(512)
	pg, err := page.NewPage(2, b.Page(0, dbtest.LeafTable, [][]byte{
		dbtest.TableLeafCell(200, dbtest.EncodeRecord("x")),
	}))
	require.NoError(t, err)

	c, err := sqliteDecoder().DecodeCell(pg, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(200), c.RowID)

	// 200 is 0x81 0x48: the additive sum is 1 + 72.
	c, err = record.NewDecoder(format.VarintLegacy, format.EncodingUTF8).DecodeCell(pg, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(73), c.RowID)
	assert.Equal(t, column.Text("x"), c.Record.Column(0))
}

func TestLayout(t *testing.T) {
	l := record.NewLayout("type", "name", "tbl_name", "rootpage", "sql")
	rec, _, err := sqliteDecoder().DecodeRecord(dbtest.EncodeRecord("table", "apples", "apples", 2), 0)
	require.NoError(t, err)

	row := l.Row(rec)
	v, err := row.Get("NAME")
	require.NoError(t, err)
	assert.Equal(t, column.Text("apples"), v)

	v, err = row.Get("sql")
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = row.Get("nope")
	assert.Error(t, err)
	assert.Equal(t, []string{"type", "name", "tbl_name", "rootpage", "sql"}, l.Names())
}
