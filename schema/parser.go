// parser.go - Parse CREATE TABLE SQL statements to extract column definitions
package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xwb1989/sqlparser"
)

var (
	// The grammar wants column options in a fixed order with the key last.
	pkAutoincrementRe = regexp.MustCompile(`(?i)\bprimary\s+key\s+autoincrement\b`)
	autoincrementRe   = regexp.MustCompile(`(?i)\bautoincrement\b`)
)

// ParseTableDefFromSQL parses a CREATE TABLE statement and returns TableDef.
// The grammar is MySQL's, so SQLite spellings are normalized first:
// AUTOINCREMENT and "quoted" identifiers.
func ParseTableDefFromSQL(sql string) (*TableDef, error) {
	stmt, err := sqlparser.Parse(normalizeCreateSQL(sql))
	if err != nil {
		return nil, fmt.Errorf("parse SQL failed: %w", err)
	}

	ddl, ok := stmt.(*sqlparser.DDL)
	if !ok || ddl.Action != sqlparser.CreateStr {
		return nil, fmt.Errorf("statement is not CREATE TABLE")
	}
	if ddl.TableSpec == nil {
		return nil, fmt.Errorf("no table spec in CREATE TABLE")
	}

	// CREATE TABLE carries the name in NewName; other DDL in Table.
	name := ddl.NewName.Name.String()
	if name == "" {
		name = ddl.Table.Name.String()
	}
	tableDef := NewTableDef(name)
	for _, col := range ddl.TableSpec.Columns {
		if err := tableDef.AddColumn(parseColumn(col)); err != nil {
			return nil, err
		}
	}

	// Column-level PRIMARY KEY is not exposed by sqlparser; table-level
	// PRIMARY KEY (...) is.
	var primaryKeys []string
	for _, idx := range ddl.TableSpec.Indexes {
		if idx.Info.Primary {
			primaryKeys = nil
			for _, col := range idx.Columns {
				primaryKeys = append(primaryKeys, col.Column.String())
			}
		}
	}
	if len(primaryKeys) > 0 {
		if err := tableDef.SetPrimaryKeys(primaryKeys); err != nil {
			return nil, err
		}
	}
	return tableDef, nil
}

func normalizeCreateSQL(sql string) string {
	sql = pkAutoincrementRe.ReplaceAllString(sql, "auto_increment primary key")
	sql = autoincrementRe.ReplaceAllString(sql, "auto_increment")
	return strings.ReplaceAll(sql, `"`, "`")
}

// parseColumn converts sqlparser.ColumnDefinition to our Column type
func parseColumn(col *sqlparser.ColumnDefinition) *Column {
	column := &Column{
		Name:          col.Name.String(),
		Type:          strings.ToUpper(col.Type.Type),
		Nullable:      !bool(col.Type.NotNull),
		AutoIncrement: bool(col.Type.Autoincrement),
	}
	if col.Type.Length != nil {
		if length, err := strconv.Atoi(string(col.Type.Length.Val)); err == nil {
			column.Length = length
		}
	}
	if col.Type.Default != nil {
		column.DefaultValue = sqlparser.String(col.Type.Default)
	}
	return column
}
