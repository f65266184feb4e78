// catalog.go - Schema catalog decoded from page 1
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wilhasse/go-sqlitefile/column"
	"github.com/wilhasse/go-sqlitefile/page"
	"github.com/wilhasse/go-sqlitefile/record"
)

var (
	ErrSchemaCorrupt = errors.New("schema corrupt")
	ErrNotFound      = errors.New("not found")
)

// Layout names the five columns of every schema row.
var Layout = record.NewLayout("type", "name", "tbl_name", "rootpage", "sql")

// Entry is one catalogued object (table, index, view or trigger).
type Entry struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	TableName string `json:"tbl_name"`
	RootPage  uint32 `json:"rootpage"` // 0 for views and triggers
	SQL       string `json:"sql"`      // empty for automatic indexes
}

// TableDef parses the entry's creation SQL.
func (e Entry) TableDef() (*TableDef, error) {
	if e.Type != "table" {
		return nil, fmt.Errorf("%s is a %s, not a table", e.Name, e.Type)
	}
	return ParseTableDefFromSQL(e.SQL)
}

// Catalog lists schema entries in on-disk cell order.
type Catalog struct {
	entries []Entry
}

// Load decodes every cell of page 1 into a catalog entry.
func Load(pg *page.Page, dec *record.Decoder) (*Catalog, error) {
	if pg.No != 1 {
		return nil, fmt.Errorf("schema lives on page 1, got page %d", pg.No)
	}
	cells, err := dec.DecodeCells(pg)
	if err != nil {
		return nil, fmt.Errorf("schema page: %w", err)
	}
	cat := &Catalog{entries: make([]Entry, 0, len(cells))}
	for i, c := range cells {
		e, err := entryFromRecord(c.Record)
		if err != nil {
			return nil, fmt.Errorf("schema row %d: %w", i, err)
		}
		cat.entries = append(cat.entries, e)
	}
	return cat, nil
}

func entryFromRecord(rec record.Record) (Entry, error) {
	if rec.Len() < len(Layout.Names()) {
		return Entry{}, fmt.Errorf("%w: %d columns, want %d", ErrSchemaCorrupt, rec.Len(), len(Layout.Names()))
	}
	row := Layout.Row(rec)
	get := func(name string) column.Value {
		v, _ := row.Get(name)
		return v
	}

	typ, name, tbl, root, sql := get("type"), get("name"), get("tbl_name"), get("rootpage"), get("sql")
	if name.Kind != column.KindText {
		return Entry{}, fmt.Errorf("%w: name is %s", ErrSchemaCorrupt, name.Kind)
	}
	if root.Kind != column.KindInt || root.Int < 0 || root.Int > int64(^uint32(0)) {
		return Entry{}, fmt.Errorf("%w: rootpage of %s is %s %v", ErrSchemaCorrupt, name.Text, root.Kind, root)
	}
	if sql.Kind != column.KindText && !sql.IsNull() {
		return Entry{}, fmt.Errorf("%w: sql of %s is %s", ErrSchemaCorrupt, name.Text, sql.Kind)
	}
	return Entry{
		Type:      typ.Text,
		Name:      name.Text,
		TableName: tbl.Text,
		RootPage:  uint32(root.Int),
		SQL:       sql.Text,
	}, nil
}

func (c *Catalog) Entries() []Entry { return c.entries }
func (c *Catalog) Len() int         { return len(c.entries) }

// Names returns every entry name in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup finds an entry by name, ignoring case as the database does.
func (c *Catalog) Lookup(name string) (Entry, error) {
	for _, e := range c.entries {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: no such table: %s", ErrNotFound, name)
}
