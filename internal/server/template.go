// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"html/template"

	"github.com/pdiddy/cord-explorer/internal/analysis"
)

// indexData is the model for the dashboard shell.
type indexData struct {
	Bounds      analysis.Bounds
	Query       string
	TotalPapers int
	MeanWords   string
	DataMinYear int
	DataMaxYear int
	Sample      []samplePaper
	Stats       []statEntry
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>CORD-19 Data Explorer</title>
<style>
  body { font-family: sans-serif; margin: 1.5rem; color: #222; }
  h1 { color: #1f77b4; }
  form { background: #f0f2f6; padding: 1rem; border-radius: 0.5rem; margin-bottom: 1rem; }
  form label { margin-right: 1rem; }
  .metrics { display: flex; gap: 2rem; margin-bottom: 1rem; }
  .metric { background: #f0f2f6; padding: 1rem 2rem; border-radius: 0.5rem; }
  .metric .value { font-size: 1.6rem; font-weight: bold; }
  .charts { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
  iframe { width: 100%; height: 420px; border: 1px solid #ddd; }
  iframe.wide { grid-column: 1 / -1; }
  table { border-collapse: collapse; margin-top: 1rem; }
  th, td { border: 1px solid #ddd; padding: 0.4rem 0.7rem; text-align: left; }
  .nodata { color: #888; font-style: italic; }
</style>
</head>
<body>
<h1>CORD-19 Research Dataset Explorer</h1>
<p>Metadata of COVID-19 and coronavirus research papers. Dataset years:
{{.DataMinYear}}&ndash;{{.DataMaxYear}}.</p>

<form method="get" action="/">
  <label>Year from
    <input type="number" name="min_year" value="{{.Bounds.MinYear}}" min="{{.DataMinYear}}" max="{{.DataMaxYear}}">
  </label>
  <label>Year to
    <input type="number" name="max_year" value="{{.Bounds.MaxYear}}" min="{{.DataMinYear}}" max="{{.DataMaxYear}}">
  </label>
  <label>Min abstract words
    <input type="number" name="min_words" value="{{.Bounds.MinWords}}" min="0">
  </label>
  <button type="submit">Apply filters</button>
</form>

<div class="metrics">
  <div class="metric"><div>Total Papers</div><div class="value">{{.TotalPapers}}</div></div>
  <div class="metric"><div>Average Abstract Length</div><div class="value">{{.MeanWords}}</div></div>
</div>

<div class="charts">
  <iframe src="/charts/years?{{.Query}}" title="Publications by year"></iframe>
  <iframe src="/charts/journals?{{.Query}}" title="Top journals"></iframe>
  <iframe src="/charts/wordcloud?{{.Query}}" title="Title word cloud"></iframe>
  <iframe src="/charts/histogram?{{.Query}}" title="Abstract word count distribution"></iframe>
  <iframe class="wide" src="/charts/monthly?{{.Query}}" title="Monthly publication trend"></iframe>
</div>

<h2>Abstract Word Count</h2>
{{if .Stats}}
<table>
  <tr>{{range .Stats}}<th>{{.Name}}</th>{{end}}</tr>
  <tr>{{range .Stats}}<td>{{.Value}}</td>{{end}}</tr>
</table>
{{else}}
<p class="nodata">No papers match the current filters.</p>
{{end}}

<h2>Sample Papers</h2>
{{if .Sample}}
<table>
  <tr><th>Title</th><th>Journal</th><th>Year</th><th>Abstract Words</th></tr>
  {{range .Sample}}
  <tr><td>{{.Title}}</td><td>{{.Journal}}</td><td>{{.Year}}</td><td>{{.AbstractWords}}</td></tr>
  {{end}}
</table>
{{else}}
<p class="nodata">Nothing to show.</p>
{{end}}
</body>
</html>
`))
