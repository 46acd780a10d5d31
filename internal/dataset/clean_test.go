// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"errors"
	"testing"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

func rawTable(rows ...[]string) *Table {
	return &Table{
		Columns: []string{"title", "abstract", "journal", "publish_time"},
		Rows:    rows,
	}
}

func TestClean(t *testing.T) {
	in := rawTable(
		[]string{"Paper A", "a b c", "J1", "2020-03-01"},
		[]string{"Paper B", "", "J1", ""},
		[]string{"Paper C", "x", "J2", "2018-01-01"},
	)

	cleaned, err := Clean(in, types.CleanConfig{})
	if err != nil {
		t.Fatalf("Clean() error: %v", err)
	}

	if len(cleaned.Papers) != 2 {
		t.Fatalf("len(Papers) = %d, want 2 (pre-2019 row dropped)", len(cleaned.Papers))
	}
	for i, p := range cleaned.Papers {
		if p.Year != 2020 {
			t.Errorf("paper %d: Year = %d, want 2020", i, p.Year)
		}
	}
	if got := cleaned.Papers[0].AbstractWords; got != 3 {
		t.Errorf("paper 0: AbstractWords = %d, want 3", got)
	}
	if got := cleaned.Papers[1].AbstractWords; got != 0 {
		t.Errorf("paper 1: AbstractWords = %d, want 0 for empty abstract", got)
	}
	if cleaned.Papers[0].DateKnown() != true {
		t.Error("paper 0: DateKnown() = false, want true")
	}
	if cleaned.Papers[1].DateKnown() != false {
		t.Error("paper 1: DateKnown() = true, want false for missing date")
	}
}

func TestCleanDerivedTable(t *testing.T) {
	in := rawTable(
		[]string{"Paper A", "a b c", "J1", "2020-03-01"},
	)

	cleaned, err := Clean(in, types.CleanConfig{})
	if err != nil {
		t.Fatalf("Clean() error: %v", err)
	}

	wantCols := []string{"title", "abstract", "journal", "publish_time", "publication_year", "abstract_word_count"}
	if got := cleaned.Table.Columns; len(got) != len(wantCols) {
		t.Fatalf("derived columns = %v, want %v", got, wantCols)
	}
	for i, c := range wantCols {
		if cleaned.Table.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, cleaned.Table.Columns[i], c)
		}
	}

	row := cleaned.Table.Rows[0]
	if row[4] != "2020" || row[5] != "3" {
		t.Errorf("derived cells = %q, %q, want 2020, 3", row[4], row[5])
	}
}

func TestCleanInvariants(t *testing.T) {
	in := rawTable(
		[]string{"A", "   ", "J1", "2019-06-01"},
		[]string{"B", "one two", "", "garbage-date"},
		[]string{"C", "w", "J2", "2022"},
		[]string{"D", "x y", "J2", "1999-01-01"},
	)

	cleaned, err := Clean(in, types.CleanConfig{DefaultYear: 2020, MinYear: 2019})
	if err != nil {
		t.Fatalf("Clean() error: %v", err)
	}

	for i, p := range cleaned.Papers {
		if p.Year < 2019 {
			t.Errorf("paper %d: Year = %d, violates filter invariant", i, p.Year)
		}
		if p.AbstractWords < 0 {
			t.Errorf("paper %d: AbstractWords = %d, want >= 0", i, p.AbstractWords)
		}
	}

	// Whitespace-only abstract counts as zero words.
	if got := cleaned.Papers[0].AbstractWords; got != 0 {
		t.Errorf("whitespace-only abstract: AbstractWords = %d, want 0", got)
	}
	// Unparseable date falls back to the default year, keeping the row.
	if got := cleaned.Papers[1].Year; got != 2020 {
		t.Errorf("unparseable date: Year = %d, want default 2020", got)
	}
	// Bare-year dates parse.
	if got := cleaned.Papers[2].Year; got != 2022 {
		t.Errorf("bare year: Year = %d, want 2022", got)
	}
}

func TestCleanMissingColumn(t *testing.T) {
	in := &Table{
		Columns: []string{"title", "journal", "publish_time"},
		Rows:    [][]string{{"A", "J1", "2020-01-01"}},
	}

	_, err := Clean(in, types.CleanConfig{})
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Clean() error = %v, want ErrMissingColumn", err)
	}
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	in := rawTable(
		[]string{"A", "", "J1", "2020-01-01"},
	)
	before := in.Clone()

	if _, err := Clean(in, types.CleanConfig{}); err != nil {
		t.Fatalf("Clean() error: %v", err)
	}

	if in.NumRows() != before.NumRows() {
		t.Fatalf("input row count changed: %d -> %d", before.NumRows(), in.NumRows())
	}
	for i, row := range in.Rows {
		for j, cell := range row {
			if cell != before.Rows[i][j] {
				t.Errorf("input cell [%d][%d] changed: %q -> %q", i, j, before.Rows[i][j], cell)
			}
		}
	}
	if in.NumCols() != 4 {
		t.Errorf("input gained columns: %v", in.Columns)
	}
}

func TestCleanEmptyTable(t *testing.T) {
	cleaned, err := Clean(rawTable(), types.CleanConfig{})
	if err != nil {
		t.Fatalf("Clean() error: %v", err)
	}
	if len(cleaned.Papers) != 0 {
		t.Errorf("len(Papers) = %d, want 0", len(cleaned.Papers))
	}
	if cleaned.Table.NumRows() != 0 {
		t.Errorf("derived table rows = %d, want 0", cleaned.Table.NumRows())
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in       string
		ok       bool
		wantYear int
	}{
		{"2020-03-01", true, 2020},
		{"2020-03", true, 2020},
		{"2021", true, 2021},
		{"2020 Apr 6", true, 2020},
		{"2020 Apr", true, 2020},
		{"", false, 0},
		{"   ", false, 0},
		{"not-a-date", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := ParseDate(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && d.Year() != tt.wantYear {
				t.Errorf("ParseDate(%q) year = %d, want %d", tt.in, d.Year(), tt.wantYear)
			}
		})
	}
}
