// fileheader.go - Database file header (first 100 bytes of page 1)
package page

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wilhasse/go-sqlitefile/format"
)

// ErrBadFileHeader is returned when the first 100 bytes are not a usable header.
var ErrBadFileHeader = errors.New("bad file header")

type FileHeader struct {
	PageSize        int // bytes per page; the on-disk value 1 means 65536
	WriteVersion    uint8
	ReadVersion     uint8
	ReservedBytes   uint8
	ChangeCounter   uint32
	PageCount       uint32
	FreelistTrunk   uint32
	FreelistCount   uint32
	SchemaCookie    uint32
	SchemaFormat    uint32
	DefaultCache    uint32
	TextEncoding    format.TextEncoding
	UserVersion     uint32
	ApplicationID   uint32
	VersionValidFor uint32
	SQLiteVersion   uint32
}

// UsableSize is the page size minus the reserved tail of each page.
func (h FileHeader) UsableSize() int { return h.PageSize - int(h.ReservedBytes) }

func ParseFileHeader(p []byte) (FileHeader, error) {
	if len(p) < format.FileHeaderSize {
		return FileHeader{}, fmt.Errorf("%w: short header: %d bytes", ErrBadFileHeader, len(p))
	}
	if !bytes.Equal(p[:len(format.Magic)], format.Magic) {
		return FileHeader{}, fmt.Errorf("%w: magic mismatch %q", ErrBadFileHeader, p[:len(format.Magic)])
	}
	raw, _ := format.Be16(p, 16)
	size := int(raw)
	if raw == 1 {
		size = format.MaxPageSize
	}
	if size < format.MinPageSize || size > format.MaxPageSize || size&(size-1) != 0 {
		return FileHeader{}, fmt.Errorf("%w: page size %d", ErrBadFileHeader, raw)
	}

	be := func(off int) uint32 {
		v, _ := format.Be32(p, off)
		return v
	}
	h := FileHeader{
		PageSize:        size,
		WriteVersion:    p[18],
		ReadVersion:     p[19],
		ReservedBytes:   p[20],
		ChangeCounter:   be(24),
		PageCount:       be(28),
		FreelistTrunk:   be(32),
		FreelistCount:   be(36),
		SchemaCookie:    be(40),
		SchemaFormat:    be(44),
		DefaultCache:    be(48),
		TextEncoding:    format.TextEncoding(be(56)),
		UserVersion:     be(60),
		ApplicationID:   be(68),
		VersionValidFor: be(92),
		SQLiteVersion:   be(96),
	}
	// Databases created before the encoding was written report zero.
	if h.TextEncoding == 0 {
		h.TextEncoding = format.EncodingUTF8
	}
	return h, nil
}
