// layout.go - Named column access over decoded records
package record

import (
	"fmt"
	"strings"

	"github.com/wilhasse/go-sqlitefile/column"
)

// Layout binds column names to record positions. Lookups are
// case-insensitive.
type Layout struct {
	names []string
	index map[string]int
}

func NewLayout(names ...string) *Layout {
	l := &Layout{names: names, index: make(map[string]int, len(names))}
	for i, n := range names {
		l.index[strings.ToLower(n)] = i
	}
	return l
}

func (l *Layout) Names() []string { return l.names }

// Row views r through the layout.
func (l *Layout) Row(r Record) Row { return Row{layout: l, rec: r} }

type Row struct {
	layout *Layout
	rec    Record
}

// Get returns the named column. Columns the record omits read as NULL;
// a name the layout does not know is an error.
func (r Row) Get(name string) (column.Value, error) {
	i, ok := r.layout.index[strings.ToLower(name)]
	if !ok {
		return column.Value{}, fmt.Errorf("no column %q in layout", name)
	}
	return r.rec.Column(i), nil
}

func (r Row) Record() Record { return r.rec }
