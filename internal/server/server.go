// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server is the interactive dashboard over the cleaned dataset. It
// holds the cleaned table read-only in memory and recomputes the filter and
// aggregation chain synchronously on every request that changes a bound.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Server serves the dashboard pages, the summary API, and the live charts.
type Server struct {
	papers   []types.Paper
	cfg      types.ServerConfig
	analysis types.AnalysisConfig
	logger   *slog.Logger
}

// New builds a dashboard server over an already-cleaned table. The table
// is never mutated after this point.
func New(papers []types.Paper, cfg types.ServerConfig, analysisCfg types.AnalysisConfig, logger *slog.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8501"
	}
	if cfg.SampleRows <= 0 {
		cfg.SampleRows = 10
	}
	if cfg.DefaultMinYear == 0 {
		cfg.DefaultMinYear = 2020
	}
	if cfg.DefaultMaxYear == 0 {
		cfg.DefaultMaxYear = 2021
	}
	return &Server{
		papers:   papers,
		cfg:      cfg,
		analysis: analysisCfg,
		logger:   logger.With(slog.String("component", "dashboard")),
	}
}

// Handler returns the dashboard's HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/api/summary", s.handleSummary)
	r.Get("/api/papers", s.handlePapers)
	r.Get("/charts/years", s.handleYearsChart)
	r.Get("/charts/monthly", s.handleMonthlyChart)
	r.Get("/charts/journals", s.handleJournalsChart)
	r.Get("/charts/wordcloud", s.handleWordCloudChart)
	r.Get("/charts/histogram", s.handleHistogramChart)
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", slog.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
