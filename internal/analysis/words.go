// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"sort"
	"strings"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// WordFrequency is one entry of the title word-cloud input.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// stopwords are common English and COVID-boilerplate tokens excluded from
// the title word cloud.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "into": {},
	"during": {}, "among": {}, "between": {}, "using": {}, "based": {},
	"study": {}, "analysis": {}, "review": {}, "case": {}, "are": {},
	"can": {}, "its": {}, "not": {}, "our": {}, "their": {}, "this": {},
	"that": {}, "these": {}, "what": {}, "how": {}, "via": {}, "after": {},
	"against": {}, "under": {}, "toward": {}, "towards": {}, "does": {},
}

// TitleWordFrequencies tokenizes paper titles and counts word occurrences
// for the word cloud: lowercased, punctuation-trimmed, with stopwords,
// numbers, and tokens shorter than three characters skipped. The result is
// descending by count (ties alphabetical, for determinism), truncated to
// limit entries.
func TitleWordFrequencies(papers []types.Paper, limit int) []WordFrequency {
	counts := map[string]int{}
	for _, p := range papers {
		for _, tok := range strings.Fields(strings.ToLower(p.Title)) {
			tok = strings.Trim(tok, ".,;:!?()[]{}\"'`“”‘’-–—/")
			if len(tok) < 3 || isNumeric(tok) {
				continue
			}
			if _, skip := stopwords[tok]; skip {
				continue
			}
			counts[tok]++
		}
	}

	out := make([]WordFrequency, 0, len(counts))
	for w, n := range counts {
		out = append(out, WordFrequency{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
