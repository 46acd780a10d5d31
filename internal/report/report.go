// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the batch run's key-findings artifact.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Findings is the summary.yaml artifact: the closing figures of a batch
// run, derived entirely from the aggregates.
type Findings struct {
	TotalPapers        int                   `yaml:"total_papers"`
	FirstYear          int                   `yaml:"first_year"`
	LastYear           int                   `yaml:"last_year"`
	MostProductiveYear *types.YearCount      `yaml:"most_productive_year,omitempty"`
	TopJournal         *types.JournalCount   `yaml:"top_journal,omitempty"`
	AbstractWordStats  *types.WordCountStats `yaml:"abstract_word_stats,omitempty"`
}

// FromSummary derives the key findings from a summary.
func FromSummary(s types.Summary) Findings {
	f := Findings{
		TotalPapers:       s.TotalPapers,
		AbstractWordStats: s.WordStats,
	}
	if len(s.YearlyCounts) > 0 {
		f.FirstYear = s.YearlyCounts[0].Year
		f.LastYear = s.YearlyCounts[len(s.YearlyCounts)-1].Year
		best := s.YearlyCounts[0]
		for _, yc := range s.YearlyCounts[1:] {
			if yc.Count > best.Count {
				best = yc
			}
		}
		f.MostProductiveYear = &best
	}
	if len(s.TopJournals) > 0 {
		top := s.TopJournals[0]
		f.TopJournal = &top
	}
	return f
}

// WriteYAML writes the findings to path, creating parent directories as
// needed.
func (f Findings) WriteYAML(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
