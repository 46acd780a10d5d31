// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store caches the cleaned paper table in SQLite, keyed by source
// path and file mod time. The dashboard reads through this cache so filter
// interactions never re-parse the CSV; the cache invalidates itself when
// the artifact's mod time changes and has no other eviction. Abstract text
// is not persisted; the word count covers every feature that reads it, and
// the Date field is re-derived from the stored publish time on each hit.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cord-explorer/internal/dataset"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Cache is a process-scoped SQLite cache of cleaned paper records.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at path, creating the schema
// and parent directories if needed.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	c := &Cache{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sources (
			path TEXT PRIMARY KEY,
			mod_time TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS papers (
			source_path TEXT NOT NULL REFERENCES sources(path),
			ord INTEGER NOT NULL,
			title TEXT,
			journal TEXT,
			publish_time TEXT,
			publication_year INTEGER NOT NULL,
			abstract_word_count INTEGER NOT NULL,
			PRIMARY KEY (source_path, ord)
		)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Get returns the cached records for source if the stored mod time matches
// modTime exactly. A mismatch or unknown source is a miss, not an error.
func (c *Cache) Get(ctx context.Context, source string, modTime time.Time) ([]types.Paper, bool, error) {
	var stored string
	err := c.db.QueryRowContext(ctx,
		`SELECT mod_time FROM sources WHERE path = ?`, source,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("checking cache entry: %w", err)
	}
	if stored != modTimeKey(modTime) {
		return nil, false, nil
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT title, journal, publish_time, publication_year, abstract_word_count
		 FROM papers WHERE source_path = ? ORDER BY ord`, source)
	if err != nil {
		return nil, false, fmt.Errorf("reading cached papers: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var p types.Paper
		if err := rows.Scan(&p.Title, &p.Journal, &p.PublishTime, &p.Year, &p.AbstractWords); err != nil {
			return nil, false, fmt.Errorf("scanning cached paper: %w", err)
		}
		if d, ok := dataset.ParseDate(p.PublishTime); ok {
			p.Date = d
		}
		papers = append(papers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating cached papers: %w", err)
	}
	return papers, true, nil
}

// Put replaces the cached records for source in one transaction and stamps
// the entry with modTime.
func (c *Cache) Put(ctx context.Context, source string, modTime time.Time, papers []types.Paper) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM papers WHERE source_path = ?`, source); err != nil {
		return fmt.Errorf("deleting stale papers: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sources (path, mod_time) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET mod_time=excluded.mod_time`,
		source, modTimeKey(modTime),
	); err != nil {
		return fmt.Errorf("upserting source: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (source_path, ord, title, journal, publish_time, publication_year, abstract_word_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range papers {
		if _, err := stmt.ExecContext(ctx, source, i, p.Title, p.Journal, p.PublishTime, p.Year, p.AbstractWords); err != nil {
			return fmt.Errorf("inserting paper %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func modTimeKey(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
