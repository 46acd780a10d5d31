// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads, explores, and cleans the research-paper metadata
// table. Cleaning is a one-shot transformation: the input table is never
// mutated, so a diagnostic pass over it stays valid afterwards.
package dataset

import "slices"

// Column names the cleaning stage depends on.
const (
	ColTitle       = "title"
	ColAbstract    = "abstract"
	ColJournal     = "journal"
	ColPublishTime = "publish_time"

	// Derived columns appended by the cleaning stage.
	ColYear      = "publication_year"
	ColWordCount = "abstract_word_count"
)

// Table is an in-memory delimited table: a header plus ordered rows of
// string cells. Columns beyond the ones the pipeline knows about pass
// through untouched.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Columns) }

// ColumnIndex returns the position of the named column, or false when the
// table has no such column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = slices.Clone(row)
	}
	return out
}
