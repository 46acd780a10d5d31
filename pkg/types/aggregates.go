// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// YearCount is one bucket of the publications-by-year histogram.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// MonthCount is one bucket of the monthly publication trend. Month is a
// calendar month in "2006-01" form; only rows with a parseable date
// contribute, so the buckets never include default-year placeholders.
type MonthCount struct {
	Month string `json:"month" yaml:"month"`
	Count int    `json:"count" yaml:"count"`
}

// JournalCount is one entry of the top-journals ranking.
type JournalCount struct {
	Journal string `json:"journal" yaml:"journal"`
	Count   int    `json:"count" yaml:"count"`
}

// WordCountStats is the seven-number summary of abstract_word_count across
// a table: count, mean, sample standard deviation, min, quartiles, max.
// A nil *WordCountStats means the table had no rows ("no data"), never a
// fabricated all-zero summary.
type WordCountStats struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Q25    float64 `json:"q25" yaml:"q25"`
	Median float64 `json:"median" yaml:"median"`
	Q75    float64 `json:"q75" yaml:"q75"`
	Max    float64 `json:"max" yaml:"max"`
}

// Summary groups the three aggregates computed over a cleaned (and possibly
// filtered) table. Each aggregate is a pure function of the input rows and
// is recomputed fresh on every invocation.
type Summary struct {
	// TotalPapers is the number of rows the aggregates were computed over.
	TotalPapers int `json:"total_papers" yaml:"total_papers"`

	// YearlyCounts maps publication years to paper counts, ascending by
	// year; the counts sum to TotalPapers.
	YearlyCounts []YearCount `json:"yearly_counts" yaml:"yearly_counts"`

	// TopJournals ranks journals by paper count, descending, at most the
	// configured top-N; rows without a journal are excluded here only.
	TopJournals []JournalCount `json:"top_journals" yaml:"top_journals"`

	// WordStats summarizes abstract_word_count; nil when there is no data.
	WordStats *WordCountStats `json:"word_stats,omitempty" yaml:"word_stats,omitempty"`
}
