//go:build cgo_sqlite

// Build with: go test -tags cgo_sqlite (requires CGO_ENABLED=1)
package dbtest

import (
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"
