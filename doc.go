// Package sqlitefile reads SQLite database files without the SQLite library.
//
// The library is organized into logical groups of functionality:
//
// Core Types and Constants:
//   - format: page types, text encodings, varints and big-endian readers
//
// Page Structure Components:
//   - page: file header, b-tree page header, cell pointer array, page reader
//
// Record Handling:
//   - column: serial types and per-type value parsers
//   - record: cell and record decoding, named column layouts
//
// Schema and Queries:
//   - schema: the catalog on page 1 and CREATE TABLE parsing
//   - query: dot commands, SELECT extraction and execution
//
// Basic usage:
//
//	db, _ := sqlitefile.Open("sample.db", sqlitefile.Options{})
//	defer db.Close()
//
//	res, _ := db.Exec("SELECT COUNT(*) FROM apples")
//	fmt.Println(res.Count)
package sqlitefile
