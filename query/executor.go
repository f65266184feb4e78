// executor.go - Command execution over a page source
package query

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/wilhasse/go-sqlitefile/page"
	"github.com/wilhasse/go-sqlitefile/record"
	"github.com/wilhasse/go-sqlitefile/schema"
)

// Source hands out parsed pages by 1-based number.
type Source interface {
	PageSize() int
	ReadPage(no uint32) (*page.Page, error)
}

// DBInfo is the answer to .dbinfo.
type DBInfo struct {
	PageSize   int `json:"page_size"`
	TableCount int `json:"table_count"`
}

// Result carries the output of one command. Only the fields for Kind are set.
type Result struct {
	Kind    Kind
	Info    DBInfo
	Names   []string
	Entries []schema.Entry
	Page    *page.Page

	// SELECT
	IsCount bool
	Count   int
	SQL     string
}

type Executor struct {
	src Source
	dec *record.Decoder
	log *slog.Logger
}

func NewExecutor(src Source, dec *record.Decoder, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{src: src, dec: dec, log: log}
}

// Run dispatches a parsed command.
func (ex *Executor) Run(cmd Command) (Result, error) {
	res := Result{Kind: cmd.Kind}
	var err error
	switch cmd.Kind {
	case CmdDBInfo:
		res.Info, err = ex.DBInfo()
	case CmdTables:
		res.Names, err = ex.Tables()
	case CmdSchema:
		res.Entries, err = ex.Schema()
	case CmdPage:
		res.Page, err = ex.Page(cmd.PageNo)
	case CmdSelect:
		if cmd.Select == nil {
			return Result{}, fmt.Errorf("select command without selection")
		}
		res, err = ex.Select(cmd.Select)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Kind)
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// DBInfo reports the page size and the number of cells on page 1.
func (ex *Executor) DBInfo() (DBInfo, error) {
	pg, err := ex.src.ReadPage(1)
	if err != nil {
		return DBInfo{}, fmt.Errorf("read schema page: %w", err)
	}
	return DBInfo{PageSize: ex.src.PageSize(), TableCount: pg.CellCount()}, nil
}

// Catalog decodes the schema on page 1.
func (ex *Executor) Catalog() (*schema.Catalog, error) {
	pg, err := ex.src.ReadPage(1)
	if err != nil {
		return nil, fmt.Errorf("read schema page: %w", err)
	}
	return schema.Load(pg, ex.dec)
}

func (ex *Executor) Tables() ([]string, error) {
	cat, err := ex.Catalog()
	if err != nil {
		return nil, err
	}
	return cat.Names(), nil
}

// Schema returns the entries that carry creation SQL.
func (ex *Executor) Schema() ([]schema.Entry, error) {
	cat, err := ex.Catalog()
	if err != nil {
		return nil, err
	}
	var out []schema.Entry
	for _, e := range cat.Entries() {
		if e.SQL != "" {
			out = append(out, e)
		}
	}
	return out, nil
}

func (ex *Executor) Page(no uint32) (*page.Page, error) {
	return ex.src.ReadPage(no)
}

// CountRows returns the cell count of the named object's root page.
func (ex *Executor) CountRows(name string) (int, error) {
	cat, err := ex.Catalog()
	if err != nil {
		return 0, err
	}
	e, err := cat.Lookup(name)
	if err != nil {
		return 0, err
	}
	return ex.countRoot(e)
}

func (ex *Executor) countRoot(e schema.Entry) (int, error) {
	if e.RootPage == 0 {
		return 0, fmt.Errorf("%w: %s %s has no storage", ErrUnsupported, e.Type, e.Name)
	}
	pg, err := ex.src.ReadPage(e.RootPage)
	if err != nil {
		return 0, fmt.Errorf("read root page of %s: %w", e.Name, err)
	}
	if !pg.Header.IsLeaf() {
		// Interior cells point at children; rows below them are not counted.
		ex.log.Warn("root page is interior, count covers only its cells",
			"table", e.Name, "page", e.RootPage, "type", pg.Type().String(), "cells", pg.CellCount())
	}
	return pg.CellCount(), nil
}

// Select answers a parsed SELECT against the catalog.
func (ex *Executor) Select(sel *Selection) (Result, error) {
	cat, err := ex.Catalog()
	if err != nil {
		return Result{}, err
	}
	e, err := cat.Lookup(sel.Table)
	if err != nil {
		return Result{}, err
	}

	res := Result{Kind: CmdSelect}
	switch {
	case sel.Count:
		res.IsCount = true
		res.Count, err = ex.countRoot(e)
		if err != nil {
			return Result{}, err
		}
		return res, nil
	case sel.Star:
		res.SQL = e.SQL
		return res, nil
	}

	td, err := e.TableDef()
	if err != nil {
		ex.log.Debug("table definition unavailable", "table", e.Name, "error", err)
		return Result{}, fmt.Errorf("%w: column projection from %s", ErrUnsupported, e.Name)
	}
	for _, c := range sel.Columns {
		if _, ok := td.GetColumn(c); !ok && !isRowIDAlias(c) {
			return Result{}, fmt.Errorf("%w: %s", ErrNoSuchColumn, c)
		}
	}
	return Result{}, fmt.Errorf("%w: column projection from %s", ErrUnsupported, e.Name)
}

func isRowIDAlias(name string) bool {
	switch strings.ToLower(name) {
	case "rowid", "oid", "_rowid_":
		return true
	}
	return false
}

// Decoder returns the record decoder used for every page.
func (ex *Executor) Decoder() *record.Decoder { return ex.dec }
