// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// LoadResult is the typed outcome of a load attempt. Callers must check OK
// before using Table; failures carry a human-readable reason instead of
// being raised.
type LoadResult struct {
	Table *Table
	Rows  int
	Cols  int
	Err   error
}

// OK reports whether the load succeeded.
func (r LoadResult) OK() bool { return r.Err == nil }

// Load reads a CSV file with a header row into a Table. Ragged rows are
// tolerated: short rows are padded with empty cells and long rows truncated
// to the header width, matching the permissive reader the cleaned-data
// consumers expect.
func Load(path string) LoadResult {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{Err: fmt.Errorf("opening dataset %s: %w", path, err)}
	}
	defer f.Close()

	t, err := readTable(f)
	if err != nil {
		return LoadResult{Err: fmt.Errorf("parsing dataset %s: %w", path, err)}
	}
	return LoadResult{Table: t, Rows: t.NumRows(), Cols: t.NumCols()}
}

func readTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	t := &Table{Columns: header}
	width := len(header)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", t.NumRows()+2, err)
		}
		switch {
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		case len(row) > width:
			row = row[:width]
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// LoadCleaned reads the cleaned CSV artifact back into typed paper records.
// It fails when the derived columns are missing, which means the batch
// stage has not produced this file.
func LoadCleaned(path string) ([]types.Paper, error) {
	res := Load(path)
	if !res.OK() {
		return nil, res.Err
	}
	return PapersFromTable(res.Table)
}

// PapersFromTable converts a cleaned table into paper records, validating
// that the cleaning-stage columns are present.
func PapersFromTable(t *Table) ([]types.Paper, error) {
	idx := map[string]int{}
	for _, name := range []string{ColTitle, ColAbstract, ColJournal, ColPublishTime, ColYear, ColWordCount} {
		i, ok := t.ColumnIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s (not a cleaned dataset?)", ErrMissingColumn, name)
		}
		idx[name] = i
	}

	papers := make([]types.Paper, 0, t.NumRows())
	for n, row := range t.Rows {
		year, err := strconv.Atoi(row[idx[ColYear]])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing %s %q: %w", n+2, ColYear, row[idx[ColYear]], err)
		}
		words, err := strconv.Atoi(row[idx[ColWordCount]])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing %s %q: %w", n+2, ColWordCount, row[idx[ColWordCount]], err)
		}
		p := types.Paper{
			Title:         row[idx[ColTitle]],
			Abstract:      row[idx[ColAbstract]],
			Journal:       row[idx[ColJournal]],
			PublishTime:   row[idx[ColPublishTime]],
			Year:          year,
			AbstractWords: words,
		}
		if d, ok := ParseDate(p.PublishTime); ok {
			p.Date = d
		}
		papers = append(papers, p)
	}
	return papers, nil
}
