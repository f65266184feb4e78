//go:build !cgo_sqlite

package dbtest

import (
	_ "modernc.org/sqlite" // pure Go driver, no cgo
)

const driverName = "sqlite"
