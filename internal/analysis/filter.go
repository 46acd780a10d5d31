// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import "github.com/pdiddy/cord-explorer/pkg/types"

// Bounds are the interactive filter controls: an inclusive publication-year
// range and a minimum abstract word count.
type Bounds struct {
	MinYear  int `json:"min_year"`
	MaxYear  int `json:"max_year"`
	MinWords int `json:"min_words"`
}

// Apply returns the subsequence of papers satisfying all three predicates.
// An empty result is valid; the aggregates handle zero rows. Applying the
// same bounds twice returns the same rows (the filter is idempotent).
func (b Bounds) Apply(papers []types.Paper) []types.Paper {
	out := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if p.Year < b.MinYear || p.Year > b.MaxYear {
			continue
		}
		if p.AbstractWords < b.MinWords {
			continue
		}
		out = append(out, p)
	}
	return out
}

// YearSpan returns the minimum and maximum publication year present in the
// table, or ok=false for an empty table. The dashboard uses it to label the
// year controls.
func YearSpan(papers []types.Paper) (minYear, maxYear int, ok bool) {
	if len(papers) == 0 {
		return 0, 0, false
	}
	minYear, maxYear = papers[0].Year, papers[0].Year
	for _, p := range papers[1:] {
		if p.Year < minYear {
			minYear = p.Year
		}
		if p.Year > maxYear {
			maxYear = p.Year
		}
	}
	return minYear, maxYear, true
}
