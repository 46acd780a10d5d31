// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ColumnInfo describes one column of the table for the exploration report.
type ColumnInfo struct {
	Name    string
	Type    string
	Missing int
}

// Report is a read-only diagnostic of a table: its shape, the columns in
// original order with inferred types, per-column missing-value counts, and
// a short head sample of the leading rows.
type Report struct {
	Rows    int
	Cols    int
	Columns []ColumnInfo
	Head    [][]string
}

// headRows is how many leading rows the report samples.
const headRows = 5

// MissingColumns returns the columns with at least one missing value, in
// original column order.
func (r Report) MissingColumns() []ColumnInfo {
	var out []ColumnInfo
	for _, c := range r.Columns {
		if c.Missing > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Explore produces a diagnostic report of the table without mutating it.
func Explore(t *Table) Report {
	rep := Report{Rows: t.NumRows(), Cols: t.NumCols()}
	for i, name := range t.Columns {
		info := ColumnInfo{Name: name}
		var sample string
		for _, row := range t.Rows {
			cell := row[i]
			if strings.TrimSpace(cell) == "" {
				info.Missing++
			} else if sample == "" {
				sample = cell
			}
		}
		info.Type = inferType(sample)
		rep.Columns = append(rep.Columns, info)
	}
	n := headRows
	if len(t.Rows) < n {
		n = len(t.Rows)
	}
	for _, row := range t.Rows[:n] {
		rep.Head = append(rep.Head, append([]string(nil), row...))
	}
	return rep
}

// inferType classifies a sample cell value as int, float, date, or text.
// An all-missing column reports as text.
func inferType(sample string) string {
	if sample == "" {
		return "text"
	}
	if _, err := strconv.ParseInt(sample, 10, 64); err == nil {
		return "int"
	}
	if _, err := strconv.ParseFloat(sample, 64); err == nil {
		return "float"
	}
	if _, ok := ParseDate(sample); ok {
		return "date"
	}
	return "text"
}

// truncateCell shortens long cell values so head rows stay one line each.
func truncateCell(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Write renders the report in the batch run's exploration format.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "Shape: %d rows x %d columns\n", r.Rows, r.Cols)

	fmt.Fprintln(w, "Columns:")
	for _, c := range r.Columns {
		fmt.Fprintf(w, "  %-24s %s\n", c.Name, c.Type)
	}

	if len(r.Head) > 0 {
		fmt.Fprintf(w, "First %d rows:\n", len(r.Head))
		for _, row := range r.Head {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = truncateCell(cell)
			}
			fmt.Fprintf(w, "  %s\n", strings.Join(cells, " | "))
		}
	}

	missing := r.MissingColumns()
	if len(missing) == 0 {
		fmt.Fprintln(w, "No missing values.")
		return
	}
	fmt.Fprintln(w, "Missing values:")
	for _, c := range missing {
		fmt.Fprintf(w, "  %-24s %d\n", c.Name, c.Missing)
	}
}
