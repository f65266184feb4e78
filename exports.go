// exports.go - Re-exports for main package API
package sqlitefile

import (
	"github.com/wilhasse/go-sqlitefile/column"
	"github.com/wilhasse/go-sqlitefile/format"
	"github.com/wilhasse/go-sqlitefile/page"
	"github.com/wilhasse/go-sqlitefile/query"
	"github.com/wilhasse/go-sqlitefile/record"
	"github.com/wilhasse/go-sqlitefile/schema"
)

// Re-export types from format package
type (
	PageType     = format.PageType
	TextEncoding = format.TextEncoding
	VarintMode   = format.VarintMode
)

// Re-export constants from format package
const (
	PageTypeInteriorIndex = format.PageTypeInteriorIndex
	PageTypeInteriorTable = format.PageTypeInteriorTable
	PageTypeLeafIndex     = format.PageTypeLeafIndex
	PageTypeLeafTable     = format.PageTypeLeafTable
	VarintSQLite          = format.VarintSQLite
	VarintLegacy          = format.VarintLegacy
)

// Re-export types from page, record and schema packages
type (
	FileHeader = page.FileHeader
	Page       = page.Page
	Value      = column.Value
	Record     = record.Record
	Cell       = record.Cell
	Entry      = schema.Entry
	Result     = query.Result
	DBInfo     = query.DBInfo
)

// Errors, matched with errors.Is.
var (
	ErrTruncatedInput      = format.ErrTruncatedInput
	ErrOutOfBounds         = format.ErrOutOfBounds
	ErrBadFileHeader       = page.ErrBadFileHeader
	ErrUnsupportedPageType = page.ErrUnsupportedPageType
	ErrReservedSerialType  = column.ErrReservedSerialType
	ErrCorruptRecord       = record.ErrCorruptRecord
	ErrSchemaCorrupt       = schema.ErrSchemaCorrupt
	ErrNotFound            = schema.ErrNotFound
	ErrUnknownCommand      = query.ErrUnknownCommand
	ErrUnsupported         = query.ErrUnsupported
	ErrNoSuchColumn        = query.ErrNoSuchColumn
)
