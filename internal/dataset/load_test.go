// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "metadata.csv",
		"title,abstract,journal,publish_time\n"+
			"Paper A,\"a, b\",J1,2020-03-01\n"+
			"Paper B,,J2,2021-05-05\n")

	res := Load(path)
	if !res.OK() {
		t.Fatalf("Load() failed: %v", res.Err)
	}
	if res.Rows != 2 || res.Cols != 4 {
		t.Errorf("shape = %dx%d, want 2x4", res.Rows, res.Cols)
	}
	if got := res.Table.Rows[0][1]; got != "a, b" {
		t.Errorf("quoted cell = %q, want %q", got, "a, b")
	}
}

func TestLoadMissingFile(t *testing.T) {
	res := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if res.OK() {
		t.Fatal("Load() succeeded for a missing file")
	}
	if res.Table != nil {
		t.Error("failed load should not carry a table")
	}
}

func TestLoadRaggedRows(t *testing.T) {
	path := writeFile(t, "ragged.csv",
		"title,abstract,journal,publish_time\n"+
			"Short,one\n"+
			"Long,a,J1,2020-01-01,extra\n")

	res := Load(path)
	if !res.OK() {
		t.Fatalf("Load() failed: %v", res.Err)
	}
	for i, row := range res.Table.Rows {
		if len(row) != 4 {
			t.Errorf("row %d width = %d, want 4", i, len(row))
		}
	}
	if got := res.Table.Rows[0][2]; got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
}

func TestLoadCleaned(t *testing.T) {
	cleaned, err := Clean(rawTable(
		[]string{"Paper A", "a b c", "J1", "2020-03-01"},
		[]string{"Paper B", "", "", ""},
	), types.CleanConfig{})
	if err != nil {
		t.Fatalf("Clean() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cleaned.csv")
	if err := WriteCSV(cleaned.Table, path); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	papers, err := LoadCleaned(path)
	if err != nil {
		t.Fatalf("LoadCleaned() error: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}
	for i, p := range papers {
		want := cleaned.Papers[i]
		if p.Title != want.Title || p.Year != want.Year || p.AbstractWords != want.AbstractWords {
			t.Errorf("paper %d round-trip mismatch: got %+v, want %+v", i, p, want)
		}
	}
}

func TestLoadCleanedRejectsRawDataset(t *testing.T) {
	path := writeFile(t, "metadata.csv",
		"title,abstract,journal,publish_time\nPaper A,x,J1,2020-01-01\n")

	_, err := LoadCleaned(path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("LoadCleaned() error = %v, want ErrMissingColumn for raw dataset", err)
	}
}
