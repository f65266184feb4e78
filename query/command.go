// command.go - Command recognition
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnsupported    = errors.New("unsupported")
	ErrNoSuchColumn   = errors.New("no such column")
)

type Kind int

const (
	CmdDBInfo Kind = iota
	CmdTables
	CmdSchema
	CmdPage
	CmdSelect
)

func (k Kind) String() string {
	switch k {
	case CmdDBInfo:
		return ".dbinfo"
	case CmdTables:
		return ".tables"
	case CmdSchema:
		return ".schema"
	case CmdPage:
		return ".page"
	case CmdSelect:
		return "SELECT"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// Command is one recognized command line.
type Command struct {
	Kind   Kind
	Raw    string
	PageNo uint32     // CmdPage
	Select *Selection // CmdSelect
}

// ParseCommand recognizes the dot commands and single-table SELECTs.
func ParseCommand(s string) (Command, error) {
	raw := strings.TrimSpace(s)
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrUnknownCommand)
	}
	cmd := Command{Raw: raw}
	switch strings.ToLower(fields[0]) {
	case ".dbinfo":
		cmd.Kind = CmdDBInfo
	case ".tables":
		cmd.Kind = CmdTables
	case ".schema":
		cmd.Kind = CmdSchema
	case ".page":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf(".page takes one page number")
		}
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || n == 0 {
			return Command{}, fmt.Errorf("bad page number %q", fields[1])
		}
		cmd.Kind = CmdPage
		cmd.PageNo = uint32(n)
	case "select":
		sel, err := ParseSelect(raw)
		if err != nil {
			return Command{}, err
		}
		cmd.Kind = CmdSelect
		cmd.Select = sel
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, raw)
	}
	if cmd.Kind != CmdPage && cmd.Kind != CmdSelect && len(fields) > 1 {
		return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrUnknownCommand, fields[0])
	}
	return cmd, nil
}
