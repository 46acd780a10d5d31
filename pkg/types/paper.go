// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the cord-explorer
// pipeline: cleaned paper records, aggregate results, and per-stage
// configuration.
package types

import "time"

// Paper represents one cleaned research-paper metadata record: the original
// CSV fields plus the two derived columns produced by the cleaning stage.
type Paper struct {
	// Title is the paper title; may be empty in the source data.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract, imputed to "" when absent.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Journal is the publishing journal; empty when the source row has none.
	Journal string `json:"journal" yaml:"journal"`

	// PublishTime is the raw publish_time value from the source row.
	PublishTime string `json:"publish_time" yaml:"publish_time"`

	// Date is the parsed publication date. The zero time means the source
	// value was absent or unparseable; no date is ever fabricated.
	Date time.Time `json:"date,omitzero" yaml:"date,omitempty"`

	// Year is the derived publication_year. Always set: rows with an
	// unknown date receive the configured default year.
	Year int `json:"publication_year" yaml:"publication_year"`

	// AbstractWords is the derived abstract_word_count: the number of
	// whitespace-separated tokens in Abstract. Zero for empty abstracts.
	AbstractWords int `json:"abstract_word_count" yaml:"abstract_word_count"`
}

// DateKnown reports whether the source row carried a parseable date.
func (p Paper) DateKnown() bool {
	return !p.Date.IsZero()
}
