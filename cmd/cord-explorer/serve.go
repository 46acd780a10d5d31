// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/dataset"
	"github.com/pdiddy/cord-explorer/internal/server"
	"github.com/pdiddy/cord-explorer/internal/store"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the interactive dashboard over the cleaned dataset",
	Long: `Serve starts a local web dashboard over the cleaned CSV artifact the
analyze stage writes. Filters (publication-year range, minimum abstract word
count) recompute the aggregates on every change. The cleaned table is cached
in SQLite keyed by the artifact's mod time, so repeated runs skip the CSV
parse until the artifact changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	serveCmd.Flags().String("cleaned", "", "cleaned CSV artifact path (default from config)")
	serveCmd.Flags().String("cache", "", "SQLite load-cache path (default from config)")
	serveCmd.Flags().Bool("no-cache", false, "bypass the SQLite load cache")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v, _ := cmd.Flags().GetString("cleaned"); v != "" {
		cfg.Data.CleanedPath = v
	}
	if v, _ := cmd.Flags().GetString("cache"); v != "" {
		cfg.Data.CachePath = v
	}
	noCache, _ := cmd.Flags().GetBool("no-cache")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	papers, err := loadCleanedPapers(cmd.Context(), cfg.Data, noCache, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(papers, cfg.Server, cfg.Analysis, logger)
	return srv.ListenAndServe(ctx)
}

// loadCleanedPapers reads the cleaned artifact through the SQLite load
// cache. A cache hit (same path, same mod time) skips the CSV parse
// entirely; the cache refreshes itself when the artifact changes.
func loadCleanedPapers(ctx context.Context, cfg types.DataConfig, noCache bool, logger *slog.Logger) ([]types.Paper, error) {
	info, err := os.Stat(cfg.CleanedPath)
	if err != nil {
		return nil, fmt.Errorf("cleaned dataset not found at %s: run 'cord-explorer analyze' first", cfg.CleanedPath)
	}
	modTime := info.ModTime()

	if noCache {
		return loadCleanedCSV(cfg.CleanedPath, logger)
	}

	cache, err := store.Open(cfg.CachePath)
	if err != nil {
		// A broken cache should not block the dashboard.
		logger.Warn("load cache unavailable, reading CSV directly", slog.String("error", err.Error()))
		return loadCleanedCSV(cfg.CleanedPath, logger)
	}
	defer cache.Close()

	papers, hit, err := cache.Get(ctx, cfg.CleanedPath, modTime)
	if err != nil {
		return nil, fmt.Errorf("reading load cache: %w", err)
	}
	if hit {
		logger.Info("load cache hit", slog.String("source", cfg.CleanedPath), slog.Int("papers", len(papers)))
		return papers, nil
	}

	papers, err = loadCleanedCSV(cfg.CleanedPath, logger)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(ctx, cfg.CleanedPath, modTime, papers); err != nil {
		logger.Warn("load cache write failed", slog.String("error", err.Error()))
	}
	return papers, nil
}

func loadCleanedCSV(path string, logger *slog.Logger) ([]types.Paper, error) {
	start := time.Now()
	papers, err := dataset.LoadCleaned(path)
	if err != nil {
		return nil, fmt.Errorf("loading cleaned dataset %s: %w (run 'cord-explorer analyze' to regenerate it)", path, err)
	}
	logger.Info("cleaned dataset loaded",
		slog.String("source", path),
		slog.Int("papers", len(papers)),
		slog.Duration("took", time.Since(start)),
	)
	return papers, nil
}
