package column_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhasse/go-sqlitefile/column"
	"github.com/wilhasse/go-sqlitefile/format"
)

func TestIntegerTypesOnZeroBuffer(t *testing.T) {
	widths := map[column.SerialType]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 6, 6: 8}
	for st, width := range widths {
		buf := make([]byte, width)
		v, n, err := column.ParseColumn(buf, 0, st, format.EncodingUTF8)
		require.NoError(t, err, "serial type %d", st)
		assert.Equal(t, column.Int(0), v)
		assert.Equal(t, width, n)
	}
}

func TestConstantTypesConsumeNothing(t *testing.T) {
	v, n, err := column.ParseColumn(nil, 0, column.SerialZero, format.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, column.Int(0), v)
	assert.Equal(t, 0, n)

	v, n, err = column.ParseColumn(nil, 0, column.SerialOne, format.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, column.Int(1), v)
	assert.Equal(t, 0, n)

	v, n, err = column.ParseColumn(nil, 0, column.SerialNull, format.EncodingUTF8)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.Equal(t, 0, n)
}

func TestSignedIntegers(t *testing.T) {
	tests := []struct {
		st   column.SerialType
		in   []byte
		want int64
	}{
		{column.SerialInt8, []byte{0xfe}, -2},
		{column.SerialInt16, []byte{0x01, 0x00}, 256},
		{column.SerialInt24, []byte{0xff, 0x00, 0x00}, -65536},
		{column.SerialInt32, []byte{0x7f, 0xff, 0xff, 0xff}, math.MaxInt32},
		{column.SerialInt48, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, -1},
		{column.SerialInt64, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, math.MinInt64},
	}
	for _, tt := range tests {
		v, _, err := column.ParseColumn(tt.in, 0, tt.st, format.EncodingUTF8)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.Int, "serial type %d", tt.st)
	}
}

func TestFloat(t *testing.T) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(-1.5))
	v, n, err := column.ParseColumn(buf, 0, column.SerialFloat64, format.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, column.KindFloat, v.Kind)
	assert.Equal(t, -1.5, v.Float)
	assert.Equal(t, 8, n)
}

func TestTextAndBlob(t *testing.T) {
	buf := []byte("xxhello\x01\x02\x03")

	v, n, err := column.ParseColumn(buf, 2, column.SerialTypeFor(column.KindText, 5), format.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, column.Text("hello"), v)
	assert.Equal(t, 5, n)

	v, n, err = column.ParseColumn(buf, 7, column.SerialTypeFor(column.KindBlob, 3), format.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, column.KindBlob, v.Kind)
	assert.Equal(t, []byte{1, 2, 3}, v.Blob)
	assert.Equal(t, 3, n)

	// Empty text and blob.
	v, n, err = column.ParseColumn(nil, 0, 13, format.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, column.Text(""), v)
	assert.Equal(t, 0, n)
	v, _, err = column.ParseColumn(nil, 0, 12, format.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, column.KindBlob, v.Kind)
}

func TestUTF16Text(t *testing.T) {
	le := []byte{'h', 0, 'i', 0, 0xe9, 0}
	v, n, err := column.ParseColumn(le, 0, column.SerialTypeFor(column.KindText, len(le)), format.EncodingUTF16LE)
	require.NoError(t, err)
	assert.Equal(t, "hié", v.Text)
	assert.Equal(t, 6, n)

	be := []byte{0, 'o', 0, 'k'}
	v, _, err = column.ParseColumn(be, 0, column.SerialTypeFor(column.KindText, len(be)), format.EncodingUTF16BE)
	require.NoError(t, err)
	assert.Equal(t, "ok", v.Text)
}

func TestReservedTypes(t *testing.T) {
	for _, st := range []column.SerialType{10, 11} {
		_, _, err := column.ParseColumn(make([]byte, 16), 0, st, format.EncodingUTF8)
		assert.ErrorIs(t, err, column.ErrReservedSerialType)
		_, err = column.SkipColumn(st)
		assert.ErrorIs(t, err, column.ErrReservedSerialType)
		assert.Nil(t, column.GetParser(st, format.EncodingUTF8))
	}
}

func TestReadsPastEndFail(t *testing.T) {
	for _, st := range []column.SerialType{4, 5, 6, 7, column.SerialTypeFor(column.KindText, 4), column.SerialTypeFor(column.KindBlob, 4)} {
		_, _, err := column.ParseColumn([]byte{0, 0, 0}, 0, st, format.EncodingUTF8)
		assert.ErrorIs(t, err, format.ErrOutOfBounds, "serial type %d", st)
	}
}

func TestWidthsBeyondAPageFail(t *testing.T) {
	for _, st := range []column.SerialType{
		column.SerialTypeFor(column.KindText, 65537),
		column.SerialTypeFor(column.KindBlob, 65537),
		column.SerialType(0xfffffffffffffffd),
		column.SerialType(0xfffffffffffffffc),
	} {
		_, err := column.SkipColumn(st)
		assert.ErrorIs(t, err, format.ErrOutOfBounds, "serial type %d", uint64(st))
		assert.NotPanics(t, func() {
			_, _, err := column.ParseColumn(make([]byte, 16), 0, st, format.EncodingUTF8)
			assert.ErrorIs(t, err, format.ErrOutOfBounds)
		})
	}
	n, err := column.SkipColumn(column.SerialTypeFor(column.KindText, 65536))
	require.NoError(t, err)
	assert.Equal(t, 65536, n)
}

func TestSerialTypeWidths(t *testing.T) {
	tests := map[column.SerialType]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 6, 6: 8, 7: 8, 8: 0, 9: 0, 12: 0, 13: 0, 14: 1, 15: 1, 100: 44, 101: 44}
	for st, want := range tests {
		got, err := column.SkipColumn(st)
		require.NoError(t, err)
		assert.Equal(t, want, got, "serial type %d", st)
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "NULL", column.Null().String())
	assert.Equal(t, "-7", column.Int(-7).String())
	assert.Equal(t, "2.5", column.Float(2.5).String())
	assert.Equal(t, "abc", column.Text("abc").String())
	assert.Equal(t, "x'0aff'", column.Blob([]byte{0x0a, 0xff}).String())
	assert.Nil(t, column.Null().Any())
	assert.Equal(t, int64(3), column.Int(3).Any())
}
