// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/pdiddy/cord-explorer/internal/analysis"
	"github.com/pdiddy/cord-explorer/internal/charts"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// boundsFromQuery reads the filter bounds from query parameters, falling
// back to the configured defaults when a parameter is absent.
func (s *Server) boundsFromQuery(r *http.Request) (analysis.Bounds, error) {
	b := analysis.Bounds{
		MinYear:  s.cfg.DefaultMinYear,
		MaxYear:  s.cfg.DefaultMaxYear,
		MinWords: s.cfg.DefaultMinWords,
	}

	q := r.URL.Query()
	for _, p := range []struct {
		key string
		dst *int
	}{
		{"min_year", &b.MinYear},
		{"max_year", &b.MaxYear},
		{"min_words", &b.MinWords},
	} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return analysis.Bounds{}, fmt.Errorf("invalid %s %q: must be an integer", p.key, raw)
		}
		*p.dst = v
	}

	if b.MinYear > b.MaxYear {
		return analysis.Bounds{}, fmt.Errorf("invalid year range: min_year %d > max_year %d", b.MinYear, b.MaxYear)
	}
	if b.MinWords < 0 {
		return analysis.Bounds{}, fmt.Errorf("invalid min_words %d: must be >= 0", b.MinWords)
	}
	return b, nil
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, map[string]string{"error": err.Error()})
}

// handleSummary serves GET /api/summary: the three aggregates recomputed
// for the requested bounds.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.boundsFromQuery(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	filtered := bounds.Apply(s.papers)
	summary, err := analysis.Summarize(r.Context(), filtered, s.analysis.TopJournals)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, summary)
}

// samplePaper is the row shape of GET /api/papers and the sample table.
type samplePaper struct {
	Title         string `json:"title"`
	Journal       string `json:"journal"`
	Year          int    `json:"publication_year"`
	AbstractWords int    `json:"abstract_word_count"`
}

// handlePapers serves GET /api/papers: a bounded sample of the filtered rows.
func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.boundsFromQuery(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	limit := s.cfg.SampleRows
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			badRequest(w, r, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = v
	}

	filtered := bounds.Apply(s.papers)
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	rows := make([]samplePaper, len(filtered))
	for i, p := range filtered {
		rows[i] = samplePaper{Title: p.Title, Journal: p.Journal, Year: p.Year, AbstractWords: p.AbstractWords}
	}
	render.JSON(w, r, rows)
}

func (s *Server) handleYearsChart(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.boundsFromQuery(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	filtered := bounds.Apply(s.papers)
	s.renderChart(w, r, charts.YearlyBar(analysis.CountByYear(filtered)))
}

func (s *Server) handleMonthlyChart(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.boundsFromQuery(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	filtered := bounds.Apply(s.papers)
	s.renderChart(w, r, charts.MonthlyLine(analysis.CountByMonth(filtered)))
}

func (s *Server) handleJournalsChart(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.boundsFromQuery(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	filtered := bounds.Apply(s.papers)
	s.renderChart(w, r, charts.JournalsBar(analysis.TopJournals(filtered, s.analysis.TopJournals)))
}

func (s *Server) handleWordCloudChart(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.boundsFromQuery(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	filtered := bounds.Apply(s.papers)
	s.renderChart(w, r, charts.TitleWordCloud(analysis.TitleWordFrequencies(filtered, s.analysis.WordCloudLimit)))
}

func (s *Server) handleHistogramChart(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.boundsFromQuery(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	filtered := bounds.Apply(s.papers)
	bins := charts.WordCountBins(filtered, s.analysis.HistogramBinWidth, s.analysis.HistogramMax)
	s.renderChart(w, r, charts.Histogram(bins))
}

type chartRenderer interface {
	Render(w io.Writer) error
}

func (s *Server) renderChart(w http.ResponseWriter, r *http.Request, c chartRenderer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(w); err != nil {
		s.logger.Error("rendering chart", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	}
}

type statEntry struct {
	Name  string
	Value string
}

// handleIndex serves the dashboard shell: filter controls, metric tiles,
// chart frames, and the sample table, all computed for the current bounds.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.boundsFromQuery(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	filtered := bounds.Apply(s.papers)
	summary, err := analysis.Summarize(r.Context(), filtered, s.analysis.TopJournals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sample := filtered
	if len(sample) > s.cfg.SampleRows {
		sample = sample[:s.cfg.SampleRows]
	}
	sampleRows := make([]samplePaper, len(sample))
	for i, p := range sample {
		sampleRows[i] = samplePaper{Title: p.Title, Journal: p.Journal, Year: p.Year, AbstractWords: p.AbstractWords}
	}

	minYear, maxYear, _ := analysis.YearSpan(s.papers)

	meanWords := "no data"
	if summary.WordStats != nil {
		meanWords = fmt.Sprintf("%.1f words", summary.WordStats.Mean)
	}

	data := indexData{
		Bounds:      bounds,
		Query:       fmt.Sprintf("min_year=%d&max_year=%d&min_words=%d", bounds.MinYear, bounds.MaxYear, bounds.MinWords),
		TotalPapers: summary.TotalPapers,
		MeanWords:   meanWords,
		DataMinYear: minYear,
		DataMaxYear: maxYear,
		Sample:      sampleRows,
		Stats:       statEntries(summary.WordStats),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("rendering index", slog.String("error", err.Error()))
	}
}

func statEntries(st *types.WordCountStats) []statEntry {
	if st == nil {
		return nil
	}
	return []statEntry{
		{"count", strconv.Itoa(st.Count)},
		{"mean", fmt.Sprintf("%.1f", st.Mean)},
		{"std", fmt.Sprintf("%.1f", st.Std)},
		{"min", fmt.Sprintf("%.0f", st.Min)},
		{"25%", fmt.Sprintf("%.1f", st.Q25)},
		{"50%", fmt.Sprintf("%.1f", st.Median)},
		{"75%", fmt.Sprintf("%.1f", st.Q75)},
		{"max", fmt.Sprintf("%.0f", st.Max)},
	}
}
