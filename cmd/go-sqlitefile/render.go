package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	sqlitefile "github.com/wilhasse/go-sqlitefile"
	"github.com/wilhasse/go-sqlitefile/internal/logging"
	"github.com/wilhasse/go-sqlitefile/query"
	"github.com/wilhasse/go-sqlitefile/record"
)

type renderer struct {
	w   io.Writer
	dec *record.Decoder
}

func (r *renderer) text(res sqlitefile.Result) error {
	switch res.Kind {
	case query.CmdDBInfo:
		fmt.Fprintf(r.w, "database page size: %d\n", res.Info.PageSize)
		fmt.Fprintf(r.w, "number of tables: %d\n", res.Info.TableCount)
	case query.CmdTables:
		fmt.Fprintln(r.w, strings.Join(res.Names, " "))
	case query.CmdSchema:
		for _, e := range res.Entries {
			fmt.Fprintf(r.w, "%s;\n", e.SQL)
		}
	case query.CmdPage:
		r.pageText(res.Page)
	case query.CmdSelect:
		if res.IsCount {
			fmt.Fprintln(r.w, res.Count)
		} else {
			fmt.Fprintln(r.w, res.SQL)
		}
	default:
		return fmt.Errorf("no renderer for %s", res.Kind)
	}
	return nil
}

func (r *renderer) pageText(pg *sqlitefile.Page) {
	fmt.Fprintf(r.w, "=== Page %d ===\n", pg.No)
	fmt.Fprintf(r.w, "\nB-tree Header (offset %d):\n", pg.HeaderOffset)
	fmt.Fprintf(r.w, "  Page Type:     %s (0x%02x)\n", pg.Type(), uint8(pg.Type()))
	fmt.Fprintf(r.w, "  Cells:         %d\n", pg.CellCount())
	fmt.Fprintf(r.w, "  Content Start: %d\n", pg.Header.ContentStart)
	fmt.Fprintf(r.w, "  Freeblock:     %d\n", pg.Header.FirstFreeblock)
	fmt.Fprintf(r.w, "  Fragmented:    %d bytes\n", pg.Header.FragmentedBytes)
	if !pg.Header.IsLeaf() {
		fmt.Fprintf(r.w, "  Right Pointer: %d\n", pg.Header.RightMostPointer)
	}

	fmt.Fprintf(r.w, "\nCells:\n")
	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	if !pg.Header.IsLeaf() {
		fmt.Fprintf(w, "  #\tOffset\n")
		for i, off := range pg.CellPointers {
			fmt.Fprintf(w, "  %d\t%d\n", i, off)
		}
		w.Flush()
		return
	}

	cells, err := r.dec.DecodeCells(pg)
	if err != nil {
		logging.Warn("cells not decodable", "page", pg.No, "error", err)
		fmt.Fprintf(r.w, "  Error decoding cells: %v\n", err)
		return
	}
	fmt.Fprintf(w, "  #\tOffset\tRowID\tPayload\tValues\n")
	for i, c := range cells {
		rowid := "-"
		if c.HasRowID {
			rowid = fmt.Sprint(c.RowID)
		}
		vals := make([]string, c.Record.Len())
		for j, v := range c.Record.Values {
			vals[j] = v.String()
		}
		fmt.Fprintf(w, "  %d\t%d\t%s\t%d\t%s\n", i, c.Offset, rowid, c.PayloadSize, strings.Join(vals, " | "))
	}
	w.Flush()
}

func (r *renderer) json(res sqlitefile.Result) error {
	var output interface{}
	switch res.Kind {
	case query.CmdDBInfo:
		output = res.Info
	case query.CmdTables:
		output = map[string]interface{}{"tables": res.Names}
	case query.CmdSchema:
		output = map[string]interface{}{"schema": res.Entries}
	case query.CmdPage:
		output = r.pageJSON(res.Page)
	case query.CmdSelect:
		if res.IsCount {
			output = map[string]interface{}{"count": res.Count}
		} else {
			output = map[string]interface{}{"sql": res.SQL}
		}
	default:
		return fmt.Errorf("no renderer for %s", res.Kind)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func (r *renderer) pageJSON(pg *sqlitefile.Page) map[string]interface{} {
	hdr := map[string]interface{}{
		"page_type":        uint8(pg.Type()),
		"page_type_name":   pg.Type().String(),
		"first_freeblock":  pg.Header.FirstFreeblock,
		"cell_count":       pg.Header.CellCount,
		"content_start":    pg.Header.ContentStart,
		"fragmented_bytes": pg.Header.FragmentedBytes,
	}
	if !pg.Header.IsLeaf() {
		hdr["right_most_pointer"] = pg.Header.RightMostPointer
	}
	output := map[string]interface{}{
		"page_number":   pg.No,
		"header_offset": pg.HeaderOffset,
		"btree_header":  hdr,
		"cell_pointers": pg.CellPointers,
	}

	if pg.Header.IsLeaf() {
		if cells, err := r.dec.DecodeCells(pg); err == nil {
			cellData := make([]map[string]interface{}, len(cells))
			for i, c := range cells {
				vals := make([]interface{}, c.Record.Len())
				for j, v := range c.Record.Values {
					vals[j] = v.Any()
				}
				cellData[i] = map[string]interface{}{
					"offset":       c.Offset,
					"payload_size": c.PayloadSize,
					"values":       vals,
				}
				if c.HasRowID {
					cellData[i]["rowid"] = c.RowID
				}
			}
			output["cells"] = cellData
		} else {
			logging.Warn("cells not decodable", "page", pg.No, "error", err)
			output["cells_error"] = err.Error()
		}
	}
	return output
}
