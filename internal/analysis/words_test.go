// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"testing"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

func titled(titles ...string) []types.Paper {
	papers := make([]types.Paper, len(titles))
	for i, s := range titles {
		papers[i] = types.Paper{Title: s}
	}
	return papers
}

func TestTitleWordFrequencies(t *testing.T) {
	papers := titled(
		"COVID-19 Vaccine Efficacy",
		"Vaccine hesitancy during the pandemic",
		"The pandemic, vaccine rollout!",
	)

	freqs := TitleWordFrequencies(papers, 0)

	byWord := map[string]int{}
	for _, f := range freqs {
		byWord[f.Word] = f.Count
	}

	if byWord["vaccine"] != 3 {
		t.Errorf("vaccine count = %d, want 3 (case-insensitive, punctuation trimmed)", byWord["vaccine"])
	}
	if byWord["pandemic"] != 2 {
		t.Errorf("pandemic count = %d, want 2", byWord["pandemic"])
	}
	if _, ok := byWord["the"]; ok {
		t.Error("stopword 'the' survived")
	}
	if _, ok := byWord["19"]; ok {
		t.Error("numeric token '19' survived")
	}

	// Descending by count.
	for i := 1; i < len(freqs); i++ {
		if freqs[i].Count > freqs[i-1].Count {
			t.Errorf("frequencies not descending at %d: %v", i, freqs)
		}
	}
}

func TestTitleWordFrequenciesLimit(t *testing.T) {
	papers := titled("alpha beta gamma delta epsilon")
	if got := TitleWordFrequencies(papers, 2); len(got) != 2 {
		t.Errorf("len(freqs) = %d, want 2", len(got))
	}
}

func TestTitleWordFrequenciesEmpty(t *testing.T) {
	if got := TitleWordFrequencies(nil, 10); len(got) != 0 {
		t.Errorf("TitleWordFrequencies(nil) = %v, want empty", got)
	}
}
