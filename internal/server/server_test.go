// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

func testServer(papers []types.Paper) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(papers, types.ServerConfig{
		DefaultMinYear:  2020,
		DefaultMaxYear:  2021,
		DefaultMinWords: 50,
		SampleRows:      10,
	}, types.AnalysisConfig{TopJournals: 10}, logger)
}

func testPapers() []types.Paper {
	return []types.Paper{
		{Title: "Alpha", Journal: "J1", Year: 2020, AbstractWords: 120},
		{Title: "Beta", Journal: "J1", Year: 2020, AbstractWords: 30},
		{Title: "Gamma", Journal: "J2", Year: 2021, AbstractWords: 80},
		{Title: "Delta", Journal: "J3", Year: 2022, AbstractWords: 300},
	}
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSummaryEndpoint(t *testing.T) {
	h := testServer(testPapers()).Handler()

	rec := get(t, h, "/api/summary?min_year=2020&max_year=2021&min_words=50")
	require.Equal(t, http.StatusOK, rec.Code)

	var s types.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))

	// Alpha (2020, 120) and Gamma (2021, 80) pass; Beta fails the word
	// floor and Delta the year range.
	assert.Equal(t, 2, s.TotalPapers)
	require.Len(t, s.YearlyCounts, 2)
	assert.Equal(t, types.YearCount{Year: 2020, Count: 1}, s.YearlyCounts[0])
	require.NotNil(t, s.WordStats)
	assert.InDelta(t, 100.0, s.WordStats.Mean, 1e-9)
}

func TestSummaryDefaults(t *testing.T) {
	h := testServer(testPapers()).Handler()

	rec := get(t, h, "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var s types.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 2, s.TotalPapers, "defaults are 2020-2021, min 50 words")
}

func TestSummaryEmptySelection(t *testing.T) {
	h := testServer(testPapers()).Handler()

	rec := get(t, h, "/api/summary?min_year=2030&max_year=2040")
	require.Equal(t, http.StatusOK, rec.Code)

	var s types.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Zero(t, s.TotalPapers)
	assert.Empty(t, s.YearlyCounts)
	assert.Empty(t, s.TopJournals)
	assert.Nil(t, s.WordStats, "empty selection reports no data, not zeros")
}

func TestSummaryBadParams(t *testing.T) {
	h := testServer(testPapers()).Handler()

	tests := []struct {
		name string
		url  string
	}{
		{"non-integer year", "/api/summary?min_year=abc"},
		{"inverted range", "/api/summary?min_year=2021&max_year=2020"},
		{"negative words", "/api/summary?min_words=-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body, "error")
		})
	}
}

func TestPapersEndpoint(t *testing.T) {
	h := testServer(testPapers()).Handler()

	rec := get(t, h, "/api/papers?min_year=2019&max_year=2022&min_words=0&limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []samplePaper
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha", rows[0].Title)
}

func TestIndexPage(t *testing.T) {
	h := testServer(testPapers()).Handler()

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "CORD-19 Research Dataset Explorer")
	assert.Contains(t, body, "/charts/years?min_year=2020")
	assert.Contains(t, body, "/charts/monthly?min_year=2020")
	assert.Contains(t, body, "Alpha", "sample table should list papers in range")
}

func TestIndexPageNoData(t *testing.T) {
	h := testServer(nil).Handler()

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No papers match")
}

func TestChartEndpoints(t *testing.T) {
	h := testServer(testPapers()).Handler()

	for _, url := range []string{
		"/charts/years",
		"/charts/monthly",
		"/charts/journals",
		"/charts/wordcloud",
		"/charts/histogram",
	} {
		rec := get(t, h, url)
		assert.Equal(t, http.StatusOK, rec.Code, url)
		assert.NotZero(t, rec.Body.Len(), url)
	}
}
