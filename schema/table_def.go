// table_def.go - Table definition built from the catalog's creation SQL
package schema

import (
	"fmt"
	"strings"
)

// TableDef represents a table definition with columns and metadata
type TableDef struct {
	Name        string             // Table name
	Columns     []*Column          // All columns in order
	ColumnMap   map[string]*Column // Lower-cased column name to column
	PrimaryKeys []string           // Primary key column names in order
}

func NewTableDef(name string) *TableDef {
	return &TableDef{
		Name:      name,
		Columns:   make([]*Column, 0),
		ColumnMap: make(map[string]*Column),
	}
}

// AddColumn adds a column to the table definition
func (td *TableDef) AddColumn(col *Column) error {
	key := strings.ToLower(col.Name)
	if _, exists := td.ColumnMap[key]; exists {
		return fmt.Errorf("column %s already exists", col.Name)
	}
	col.Ordinal = len(td.Columns)
	td.Columns = append(td.Columns, col)
	td.ColumnMap[key] = col
	return nil
}

// SetPrimaryKeys sets the primary key columns
func (td *TableDef) SetPrimaryKeys(keys []string) error {
	td.PrimaryKeys = keys
	for _, key := range keys {
		col, exists := td.GetColumn(key)
		if !exists {
			return fmt.Errorf("primary key column %s not found", key)
		}
		col.IsPrimaryKey = true
	}
	return nil
}

// GetColumn returns a column by name; names compare case-insensitively.
func (td *TableDef) GetColumn(name string) (*Column, bool) {
	col, exists := td.ColumnMap[strings.ToLower(name)]
	return col, exists
}

func (td *TableDef) ColumnNames() []string {
	names := make([]string, len(td.Columns))
	for i, c := range td.Columns {
		names[i] = c.Name
	}
	return names
}

func (td *TableDef) ColumnCount() int {
	return len(td.Columns)
}

func (td *TableDef) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Table: %s\n", td.Name))
	sb.WriteString("Columns:\n")
	for _, col := range td.Columns {
		nullable := " NULL"
		if !col.Nullable {
			nullable = " NOT NULL"
		}
		pk := ""
		if col.IsPrimaryKey {
			pk = " PRIMARY KEY"
		}
		sb.WriteString(fmt.Sprintf("  %d. %s %s%s%s\n", col.Ordinal, col.Name, col.Type, nullable, pk))
	}
	if len(td.PrimaryKeys) > 0 {
		sb.WriteString(fmt.Sprintf("Primary Keys: %v\n", td.PrimaryKeys))
	}
	return sb.String()
}
