// SPDX-License-Identifier: MIT

package result

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteText renders the table for humans: aligned columns, "unreachable"
// in the distance column and "-" in the predecessor column for rows the
// traversal never reached.
func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "VERTEX\tDISTANCE\tPREDECESSOR"); err != nil {
		return fmt.Errorf("render text: %w", err)
	}
	for _, row := range t.Rows {
		dist, pre := "unreachable", "-"
		if row.Distance.Reached() {
			dist = strconv.FormatInt(int64(row.Distance), 10)
			pre = strconv.FormatInt(row.Predecessor, 10)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\n", row.Vertex, dist, pre); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render text: %w", err)
	}

	return nil
}

// WriteCSV renders the table machine-stable: a header record, then raw
// numbers for every row with the sentinels kept as-is (2147483647 for an
// unreached distance, -1 for its predecessor).
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"vertex", "distance", "predecessor"}); err != nil {
		return fmt.Errorf("render csv: %w", err)
	}
	for _, row := range t.Rows {
		rec := []string{
			strconv.FormatInt(row.Vertex, 10),
			strconv.FormatInt(int64(row.Distance), 10),
			strconv.FormatInt(row.Predecessor, 10),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("render csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("render csv: %w", err)
	}

	return nil
}
