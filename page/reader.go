// reader.go - Page reader over a single database file handle
package page

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/wilhasse/go-sqlitefile/format"
)

// Reader reads whole pages from r. The page size is fixed at construction.
type Reader struct {
	r        io.ReaderAt
	pageSize int
	log      *slog.Logger
}

func NewReader(r io.ReaderAt, pageSize int, log *slog.Logger) *Reader {
	if log == nil {
		log = slog.Default()
	}
	return &Reader{r: r, pageSize: pageSize, log: log}
}

func (pr *Reader) PageSize() int { return pr.pageSize }

// ReadRaw returns the bytes of page no without interpreting them.
func (pr *Reader) ReadRaw(no uint32) ([]byte, error) {
	if no == 0 {
		return nil, fmt.Errorf("page numbers start at 1")
	}
	off := int64(no-1) * int64(pr.pageSize)
	pr.log.Debug("read page", "page", no, "offset", off, "size", pr.pageSize)
	buf := make([]byte, pr.pageSize)
	if err := readFull(pr.r, buf, off); err != nil {
		return nil, fmt.Errorf("read page %d: %w", no, err)
	}
	return buf, nil
}

func (pr *Reader) ReadPage(no uint32) (*Page, error) {
	buf, err := pr.ReadRaw(no)
	if err != nil {
		return nil, err
	}
	return NewPage(no, buf)
}

// ReadFileHeader reads and validates the 100-byte file header.
func ReadFileHeader(r io.ReaderAt) (FileHeader, error) {
	buf := make([]byte, format.FileHeaderSize)
	if err := readFull(r, buf, 0); err != nil {
		return FileHeader{}, fmt.Errorf("read file header: %w", err)
	}
	return ParseFileHeader(buf)
}

func readFull(r io.ReaderAt, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return fmt.Errorf("got %d of %d bytes at %d: %w", n, len(buf), off, format.ErrTruncatedInput)
	}
	return err
}
