// db.go - Opening a database file
package sqlitefile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/wilhasse/go-sqlitefile/format"
	"github.com/wilhasse/go-sqlitefile/page"
	"github.com/wilhasse/go-sqlitefile/query"
	"github.com/wilhasse/go-sqlitefile/record"
)

// Options controls how a file is decoded. The zero value reads standard
// SQLite varints and logs through slog.Default.
type Options struct {
	VarintMode format.VarintMode
	Logger     *slog.Logger
}

// DB is one open database file. It is not safe for concurrent use.
type DB struct {
	closer io.Closer
	header page.FileHeader
	pages  *page.Reader
	exec   *query.Executor
	log    *slog.Logger
}

// Open opens path read-only. Files starting with the xz magic are
// decompressed into memory first.
func Open(path string, opts Options) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var r io.ReaderAt = f
	var closer io.Closer = f
	head := make([]byte, len(xzMagic))
	n, err := f.ReadAt(head, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if IsCompressed(head[:n]) {
		br, err := decompress(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		r, closer = br, nil
		logger(opts).Debug("decompressed xz snapshot", "path", path, "size", br.Size())
	}

	db, err := open(r, opts)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	db.closer = closer
	return db, nil
}

// OpenReader reads a database from r. Close does not close r.
func OpenReader(r io.ReaderAt, opts Options) (*DB, error) {
	return open(r, opts)
}

func open(r io.ReaderAt, opts Options) (*DB, error) {
	mode, err := format.ParseVarintMode(string(opts.VarintMode))
	if err != nil {
		return nil, err
	}
	hdr, err := page.ReadFileHeader(r)
	if err != nil {
		return nil, err
	}
	log := logger(opts)
	log.Debug("opened database", "page_size", hdr.PageSize, "pages", hdr.PageCount,
		"encoding", hdr.TextEncoding.String(), "varints", string(mode))

	pages := page.NewReader(r, hdr.PageSize, log)
	dec := record.NewDecoder(mode, hdr.TextEncoding)
	return &DB{
		header: hdr,
		pages:  pages,
		exec:   query.NewExecutor(pages, dec, log),
		log:    log,
	}, nil
}

func logger(opts Options) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return slog.Default()
}

func (db *DB) Header() FileHeader { return db.header }
func (db *DB) PageSize() int      { return db.header.PageSize }

// Executor runs commands against this file.
func (db *DB) Executor() *query.Executor { return db.exec }

// ReadPage reads and parses one page.
func (db *DB) ReadPage(no uint32) (*Page, error) { return db.pages.ReadPage(no) }

// Exec parses and runs one command line.
func (db *DB) Exec(command string) (Result, error) {
	cmd, err := query.ParseCommand(command)
	if err != nil {
		return Result{}, err
	}
	db.log.Debug("run command", "kind", cmd.Kind.String())
	return db.exec.Run(cmd)
}

// Close releases the file handle. It is safe to call more than once.
func (db *DB) Close() error {
	if db.closer == nil {
		return nil
	}
	err := db.closer.Close()
	db.closer = nil
	return err
}
