// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/analysis"
	"github.com/pdiddy/cord-explorer/internal/charts"
	"github.com/pdiddy/cord-explorer/internal/dataset"
	"github.com/pdiddy/cord-explorer/internal/report"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the batch pipeline: load, clean, aggregate, render",
	Long: `Analyze runs the full batch pipeline over the raw metadata CSV: an
exploration report, the cleaning pass (year extraction, abstract word
counts, pre-2019 rows dropped), the three aggregates, four chart artifacts,
the cleaned CSV the dashboard consumes, and a key-findings summary.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("data", "", "raw metadata CSV path (default from config)")
	analyzeCmd.Flags().String("out", "", "cleaned CSV output path (default from config)")
	analyzeCmd.Flags().String("visuals", "", "chart output directory (default from config)")
	analyzeCmd.Flags().Bool("skip-charts", false, "skip rendering chart artifacts")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("data"); v != "" {
		cfg.Data.MetadataPath = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Data.CleanedPath = v
	}
	if v, _ := cmd.Flags().GetString("visuals"); v != "" {
		cfg.Data.VisualsDir = v
	}
	skipCharts, _ := cmd.Flags().GetBool("skip-charts")

	return analyze(cmd.Context(), cfg, skipCharts, os.Stdout)
}

func analyze(ctx context.Context, cfg types.ExplorerConfig, skipCharts bool, w io.Writer) error {
	fmt.Fprintf(w, "Loading %s ...\n", cfg.Data.MetadataPath)
	res := dataset.Load(cfg.Data.MetadataPath)
	if !res.OK() {
		fmt.Fprintf(w, "Could not load the dataset: %v\n", res.Err)
		fmt.Fprintf(w, "Place the CORD-19 metadata.csv at %s (download: https://www.kaggle.com/allen-institute-for-ai/CORD-19-research-challenge)\n",
			cfg.Data.MetadataPath)
		return res.Err
	}
	fmt.Fprintf(w, "Loaded %d rows, %d columns.\n\n", res.Rows, res.Cols)

	dataset.Explore(res.Table).Write(w)

	fmt.Fprintln(w, "\nCleaning ...")
	cleaned, err := dataset.Clean(res.Table, cfg.Clean)
	if err != nil {
		return fmt.Errorf("cleaning dataset: %w", err)
	}
	fmt.Fprintf(w, "Cleaned table: %d rows (%d dropped).\n\n", len(cleaned.Papers), res.Rows-len(cleaned.Papers))

	summary, err := analysis.Summarize(ctx, cleaned.Papers, cfg.Analysis.TopJournals)
	if err != nil {
		return fmt.Errorf("computing aggregates: %w", err)
	}
	writeSummary(w, summary)

	if !skipCharts {
		if err := charts.RenderAll(cfg.Data.VisualsDir, summary, cleaned.Papers, cfg.Analysis); err != nil {
			return fmt.Errorf("rendering charts: %w", err)
		}
		fmt.Fprintf(w, "Charts written to %s%c\n", cfg.Data.VisualsDir, filepath.Separator)
	}

	if err := dataset.WriteCSV(cleaned.Table, cfg.Data.CleanedPath); err != nil {
		return fmt.Errorf("writing cleaned dataset: %w", err)
	}
	fmt.Fprintf(w, "Cleaned dataset written to %s\n", cfg.Data.CleanedPath)

	if err := report.FromSummary(summary).WriteYAML(cfg.Data.SummaryPath); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	fmt.Fprintf(w, "Key findings written to %s\n", cfg.Data.SummaryPath)

	return nil
}

func writeSummary(w io.Writer, s types.Summary) {
	fmt.Fprintln(w, "Publications by year:")
	for _, yc := range s.YearlyCounts {
		fmt.Fprintf(w, "  %d  %d\n", yc.Year, yc.Count)
	}

	fmt.Fprintln(w, "Top journals:")
	for i, jc := range s.TopJournals {
		fmt.Fprintf(w, "  %2d. %-50s %d\n", i+1, jc.Journal, jc.Count)
	}

	if s.WordStats == nil {
		fmt.Fprintln(w, "Abstract word count: no data")
		return
	}
	st := s.WordStats
	fmt.Fprintf(w, "Abstract word count: count=%d mean=%.1f std=%.1f min=%.0f q25=%.1f median=%.1f q75=%.1f max=%.0f\n",
		st.Count, st.Mean, st.Std, st.Min, st.Q25, st.Median, st.Q75, st.Max)
}
