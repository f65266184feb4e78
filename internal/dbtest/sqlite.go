package dbtest

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateSQLite writes a real database file through the SQL driver and
// returns its path. pageSize 0 keeps the driver default. Statements run in
// order on a single connection, so PRAGMAs placed first take effect.
func CreateSQLite(t testing.TB, pageSize int, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sqlite.db")
	db, err := sql.Open(driverName, path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	if pageSize > 0 {
		_, err = db.Exec(fmt.Sprintf("PRAGMA page_size = %d", pageSize))
		require.NoError(t, err)
	}
	for _, s := range stmts {
		_, err = db.Exec(s)
		require.NoError(t, err, s)
	}
	require.NoError(t, db.Close())
	return path
}
