// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// ErrMissingColumn reports a schema mismatch: the dataset lacks a column
// the cleaning stage depends on.
var ErrMissingColumn = errors.New("missing expected column")

const (
	defaultYear    = 2020
	defaultMinYear = 2019
)

// Cleaned is the result of the cleaning stage: typed paper records for
// aggregation plus the derived table written as the cleaned CSV artifact
// (all original columns, imputed abstract, and the two derived columns).
type Cleaned struct {
	Papers []types.Paper
	Table  *Table
}

// Clean transforms a raw table into cleaned records. Steps, in order:
// impute missing abstracts to empty text, parse publish_time (unparseable
// values stay unknown rather than receiving a fabricated date), derive
// publication_year (unknown dates get the configured default year), derive
// abstract_word_count, and drop rows published before the minimum year.
//
// The input table is not mutated. Clean fails fast when an expected column
// is absent from the schema.
func Clean(t *Table, cfg types.CleanConfig) (*Cleaned, error) {
	if cfg.DefaultYear == 0 {
		cfg.DefaultYear = defaultYear
	}
	if cfg.MinYear == 0 {
		cfg.MinYear = defaultMinYear
	}

	required := []string{ColTitle, ColAbstract, ColJournal, ColPublishTime}
	idx := make(map[string]int, len(required))
	for _, name := range required {
		i, ok := t.ColumnIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (have: %s)", ErrMissingColumn, name, strings.Join(t.Columns, ", "))
		}
		idx[name] = i
	}

	out := &Cleaned{
		Table: &Table{Columns: append(append([]string{}, t.Columns...), ColYear, ColWordCount)},
	}

	for _, row := range t.Rows {
		abstract := row[idx[ColAbstract]]
		if strings.TrimSpace(abstract) == "" {
			abstract = ""
		}

		p := types.Paper{
			Title:       row[idx[ColTitle]],
			Abstract:    abstract,
			Journal:     strings.TrimSpace(row[idx[ColJournal]]),
			PublishTime: row[idx[ColPublishTime]],
		}

		if d, ok := ParseDate(p.PublishTime); ok {
			p.Date = d
			p.Year = d.Year()
		} else {
			p.Year = cfg.DefaultYear
		}

		// strings.Fields yields no tokens for empty or whitespace-only
		// text, so empty abstracts count as 0 words.
		p.AbstractWords = len(strings.Fields(abstract))

		if p.Year < cfg.MinYear {
			continue
		}

		out.Papers = append(out.Papers, p)

		derived := make([]string, 0, len(row)+2)
		derived = append(derived, row...)
		derived[idx[ColAbstract]] = abstract
		derived = append(derived, strconv.Itoa(p.Year), strconv.Itoa(p.AbstractWords))
		out.Table.Rows = append(out.Table.Rows, derived)
	}

	return out, nil
}

// dateLayouts covers the publish_time formats observed in the metadata:
// full dates, year-month, bare years, and the "2020 Apr 6" style.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"2006 Jan 2",
	"2006 Jan",
	time.RFC3339,
}

// ParseDate parses a publish_time value. It returns ok=false for absent or
// unparseable values; callers treat that as the explicit unknown marker.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
