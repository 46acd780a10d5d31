// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package charts renders the toolkit's visualizations with go-echarts:
// publications by year, top journals, the title word cloud, and the
// abstract word-count histogram. All chart logic lives in the aggregates;
// this package only maps them onto series.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pdiddy/cord-explorer/internal/analysis"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Artifact file names written into the visuals directory.
const (
	FileYearly    = "publications_by_year.html"
	FileJournals  = "top_journals.html"
	FileWordCloud = "title_wordcloud.html"
	FileHistogram = "abstract_wordcount_dist.html"
)

// YearlyBar charts publication counts per year.
func YearlyBar(counts []types.YearCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Publications by Year"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Publications"}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = strconv.Itoa(c.Year)
		data[i] = opts.BarData{Value: c.Count}
	}
	bar.SetXAxis(labels).AddSeries("papers", data)
	return bar
}

// JournalsBar charts the top-journal ranking.
func JournalsBar(tops []types.JournalCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top Journals"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Journal", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Publications"}),
	)

	labels := make([]string, len(tops))
	data := make([]opts.BarData, len(tops))
	for i, j := range tops {
		labels[i] = j.Journal
		data[i] = opts.BarData{Value: j.Count}
	}
	bar.SetXAxis(labels).AddSeries("papers", data)
	return bar
}

// MonthlyLine charts the monthly publication trend. Dashboard-only: the
// batch artifacts keep the original four charts.
func MonthlyLine(counts []types.MonthCount) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly Publication Trend"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Publications"}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.LineData, len(counts))
	for i, c := range counts {
		labels[i] = c.Month
		data[i] = opts.LineData{Value: c.Count}
	}
	line.SetXAxis(labels).AddSeries("papers", data)
	return line
}

// TitleWordCloud charts title word frequencies.
func TitleWordCloud(freqs []analysis.WordFrequency) *charts.WordCloud {
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Common Words in Paper Titles"}),
	)

	data := make([]opts.WordCloudData, len(freqs))
	for i, f := range freqs {
		data[i] = opts.WordCloudData{Name: f.Word, Value: f.Count}
	}
	wc.AddSeries("titles", data,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{SizeRange: []float32{14, 70}}),
	)
	return wc
}

// HistogramBin is one fixed-width bucket of the word-count distribution.
type HistogramBin struct {
	Label string
	Count int
}

// WordCountBins buckets abstract word counts into fixed-width bins up to
// maxValue, with a single overflow bucket above it.
func WordCountBins(papers []types.Paper, binWidth, maxValue int) []HistogramBin {
	if binWidth <= 0 {
		binWidth = 10
	}
	if maxValue <= 0 {
		maxValue = 500
	}

	n := maxValue / binWidth
	bins := make([]HistogramBin, n+1)
	for i := 0; i < n; i++ {
		bins[i].Label = fmt.Sprintf("%d-%d", i*binWidth, (i+1)*binWidth-1)
	}
	bins[n].Label = fmt.Sprintf("%d+", maxValue)

	for _, p := range papers {
		i := p.AbstractWords / binWidth
		if i > n {
			i = n
		}
		bins[i].Count++
	}
	return bins
}

// Histogram charts the abstract word-count distribution.
func Histogram(bins []HistogramBin) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Distribution of Abstract Word Count"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Word Count"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
	)

	labels := make([]string, len(bins))
	data := make([]opts.BarData, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
		data[i] = opts.BarData{Value: b.Count}
	}
	bar.SetXAxis(labels).AddSeries("papers", data)
	return bar
}

// RenderAll writes the four chart artifacts into dir, creating it if
// needed. The same renderers back the dashboard's live chart endpoints.
func RenderAll(dir string, summary types.Summary, papers []types.Paper, cfg types.AnalysisConfig) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating visuals directory: %w", err)
	}

	freqs := analysis.TitleWordFrequencies(papers, cfg.WordCloudLimit)
	bins := WordCountBins(papers, cfg.HistogramBinWidth, cfg.HistogramMax)

	renders := []struct {
		file  string
		chart renderer
	}{
		{FileYearly, YearlyBar(summary.YearlyCounts)},
		{FileJournals, JournalsBar(summary.TopJournals)},
		{FileWordCloud, TitleWordCloud(freqs)},
		{FileHistogram, Histogram(bins)},
	}

	for _, r := range renders {
		if err := renderFile(filepath.Join(dir, r.file), r.chart); err != nil {
			return err
		}
	}
	return nil
}

// renderer is the subset of go-echarts charts this package writes out.
type renderer interface {
	Render(w io.Writer) error
}

func renderFile(path string, c renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := c.Render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
