// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analysis computes the summary aggregates over cleaned paper
// records: publications by year, top journals, and abstract word-count
// statistics. Every function here is a pure read of its input; aggregates
// are recomputed fresh on each call, never cached incrementally.
package analysis

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// DefaultTopJournals is the ranking size used when none is configured.
const DefaultTopJournals = 10

// CountByYear groups papers by publication year and counts each group,
// ascending by year. The counts sum to len(papers).
func CountByYear(papers []types.Paper) []types.YearCount {
	counts := map[int]int{}
	for _, p := range papers {
		counts[p.Year]++
	}

	out := make([]types.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, types.YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// monthKey is the bucket format of the monthly publication trend.
const monthKey = "2006-01"

// CountByMonth groups papers by calendar month of their publication date
// and counts each group, ascending by month. Rows without a parseable date
// are excluded: the default-year fallback carries no month, and a
// fabricated one would distort the trend.
func CountByMonth(papers []types.Paper) []types.MonthCount {
	counts := map[string]int{}
	for _, p := range papers {
		if !p.DateKnown() {
			continue
		}
		counts[p.Date.Format(monthKey)]++
	}

	out := make([]types.MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, types.MonthCount{Month: month, Count: n})
	}
	// Zero-padded "2006-01" keys sort chronologically as strings.
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// TopJournals counts papers per journal and returns the top n, descending
// by count. Rows without a journal are excluded from this aggregate only.
// Ties keep the order in which journal names first appeared in the table.
func TopJournals(papers []types.Paper, n int) []types.JournalCount {
	if n <= 0 {
		n = DefaultTopJournals
	}

	counts := map[string]int{}
	var order []string
	for _, p := range papers {
		if p.Journal == "" {
			continue
		}
		if _, seen := counts[p.Journal]; !seen {
			order = append(order, p.Journal)
		}
		counts[p.Journal]++
	}

	out := make([]types.JournalCount, 0, len(order))
	for _, j := range order {
		out = append(out, types.JournalCount{Journal: j, Count: counts[j]})
	}
	// Stable sort on a first-appearance-ordered slice gives the tie rule.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// DescribeWordCounts computes the seven-number summary of
// abstract_word_count. It returns nil for an empty input: the statistics of
// an empty set are "no data", not zeros.
func DescribeWordCounts(papers []types.Paper) *types.WordCountStats {
	if len(papers) == 0 {
		return nil
	}
	values := make([]float64, len(papers))
	for i, p := range papers {
		values[i] = float64(p.AbstractWords)
	}
	return describe(values)
}

// Summarize computes all three aggregates over the same input. They only
// read the table, so they run concurrently.
func Summarize(ctx context.Context, papers []types.Paper, topN int) (types.Summary, error) {
	s := types.Summary{TotalPapers: len(papers)}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.YearlyCounts = CountByYear(papers)
		return nil
	})
	g.Go(func() error {
		s.TopJournals = TopJournals(papers, topN)
		return nil
	})
	g.Go(func() error {
		s.WordStats = DescribeWordCounts(papers)
		return nil
	})
	if err := g.Wait(); err != nil {
		return types.Summary{}, err
	}
	return s, nil
}
