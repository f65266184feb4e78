package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhasse/go-sqlitefile/schema"
)

func TestParseTableDefAutoincrement(t *testing.T) {
	sql := "CREATE TABLE apples\n(\n\tid integer primary key autoincrement,\n\tname text,\n\tcolor text\n)"
	td, err := schema.ParseTableDefFromSQL(sql)
	require.NoError(t, err)

	assert.Equal(t, "apples", td.Name)
	assert.Equal(t, []string{"id", "name", "color"}, td.ColumnNames())
	id, ok := td.GetColumn("ID")
	require.True(t, ok)
	assert.True(t, id.AutoIncrement)
	assert.Equal(t, "INTEGER", id.Type)
	assert.Equal(t, 0, id.Ordinal)
}

func TestParseTableDefQuotedAndPrimaryKey(t *testing.T) {
	sql := `CREATE TABLE "people" ("full name" varchar(40) NOT NULL, age int DEFAULT 3, PRIMARY KEY (age))`
	td, err := schema.ParseTableDefFromSQL(sql)
	require.NoError(t, err)

	assert.Equal(t, "people", td.Name)
	require.Equal(t, 2, td.ColumnCount())

	full, ok := td.GetColumn("full name")
	require.True(t, ok)
	assert.False(t, full.Nullable)
	assert.Equal(t, 40, full.Length)

	age, _ := td.GetColumn("age")
	assert.True(t, age.IsPrimaryKey)
	assert.Equal(t, "3", age.DefaultValue)
	assert.Equal(t, []string{"age"}, td.PrimaryKeys)
	assert.Contains(t, td.String(), "PRIMARY KEY")
}

func TestParseTableDefRejects(t *testing.T) {
	for _, sql := range []string{
		"SELECT 1",
		"CREATE TABLE t (a, b)",
		"not sql at all",
	} {
		_, err := schema.ParseTableDefFromSQL(sql)
		assert.Error(t, err, sql)
	}
}

func TestAddColumnRejectsDuplicates(t *testing.T) {
	td := schema.NewTableDef("t")
	require.NoError(t, td.AddColumn(&schema.Column{Name: "a"}))
	assert.Error(t, td.AddColumn(&schema.Column{Name: "A"}))
	assert.Error(t, td.SetPrimaryKeys([]string{"b"}))
}
