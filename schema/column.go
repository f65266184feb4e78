// column.go - Column definition parsed from a CREATE TABLE statement
package schema

// Column represents one declared column of a table
type Column struct {
	Name          string // Column name as declared
	Type          string // Declared type, upper-cased; empty when omitted
	Ordinal       int    // Position in table (0-based)
	Length        int    // Length argument, e.g. VARCHAR(255)
	Nullable      bool   // Whether column can be NULL
	AutoIncrement bool   // AUTOINCREMENT flag
	IsPrimaryKey  bool   // Part of primary key
	DefaultValue  string // Default value expression
}
