// select.go - SELECT text extraction
package query

import (
	"fmt"
	"strings"

	"github.com/xwb1989/sqlparser"
)

// Selection is what a single-table SELECT asks for.
type Selection struct {
	Table   string
	Count   bool     // some expression is COUNT(*)
	Star    bool     // some expression is *
	Columns []string // plain column references, in order
}

// ParseSelect extracts the column list and table of a SELECT. Anything
// beyond one plain table and a list of columns, * or COUNT(*) is
// ErrUnsupported.
func ParseSelect(sql string) (*Selection, error) {
	stmt, err := sqlparser.Parse(strings.ReplaceAll(sql, `"`, "`"))
	if err != nil {
		return nil, fmt.Errorf("parse SQL failed: %w", err)
	}
	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, fmt.Errorf("%w: %T statements", ErrUnsupported, stmt)
	}

	switch {
	case sel.Where != nil:
		return nil, fmt.Errorf("%w: WHERE", ErrUnsupported)
	case len(sel.GroupBy) > 0, sel.Having != nil:
		return nil, fmt.Errorf("%w: GROUP BY", ErrUnsupported)
	case len(sel.OrderBy) > 0:
		return nil, fmt.Errorf("%w: ORDER BY", ErrUnsupported)
	case sel.Limit != nil:
		return nil, fmt.Errorf("%w: LIMIT", ErrUnsupported)
	case sel.Distinct != "":
		return nil, fmt.Errorf("%w: DISTINCT", ErrUnsupported)
	case len(sel.From) != 1:
		return nil, fmt.Errorf("%w: %d tables in FROM", ErrUnsupported, len(sel.From))
	}

	from, ok := sel.From[0].(*sqlparser.AliasedTableExpr)
	if !ok {
		return nil, fmt.Errorf("%w: joins", ErrUnsupported)
	}
	tn, ok := from.Expr.(sqlparser.TableName)
	if !ok {
		return nil, fmt.Errorf("%w: subqueries", ErrUnsupported)
	}

	out := &Selection{Table: tn.Name.String()}
	for _, se := range sel.SelectExprs {
		switch e := se.(type) {
		case *sqlparser.StarExpr:
			out.Star = true
		case *sqlparser.AliasedExpr:
			switch x := e.Expr.(type) {
			case *sqlparser.ColName:
				out.Columns = append(out.Columns, x.Name.String())
			case *sqlparser.FuncExpr:
				if !isCountStar(x) {
					return nil, fmt.Errorf("%w: %s", ErrUnsupported, sqlparser.String(x))
				}
				out.Count = true
			default:
				return nil, fmt.Errorf("%w: %s", ErrUnsupported, sqlparser.String(e))
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, sqlparser.String(se))
		}
	}
	return out, nil
}

func isCountStar(f *sqlparser.FuncExpr) bool {
	if f.Name.Lowered() != "count" || f.Distinct || len(f.Exprs) != 1 {
		return false
	}
	_, ok := f.Exprs[0].(*sqlparser.StarExpr)
	return ok
}
