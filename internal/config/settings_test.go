package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faizmokh/harian/internal/sequence"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	s := Default()
	s.Project.Title = "SQL Everyday"
	s.Project.Start = "2025" + sequence.Hyphen + "02" + sequence.Hyphen + "26"
	s.Index.Notation = sequence.Date
	s.Index.Sparse = true
	s.Index.Widths.Title = 42

	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Project.Title != "SQL Everyday" {
		t.Fatalf("Title = %q", got.Project.Title)
	}
	if got.Project.Start != s.Project.Start {
		t.Fatalf("Start = %q, want %q", got.Project.Start, s.Project.Start)
	}
	if got.Index.Notation != sequence.Date || !got.Index.Sparse {
		t.Fatalf("index settings = %+v", got.Index)
	}
	if got.Index.Widths.Title != 42 {
		t.Fatalf("Widths.Title = %d, want 42", got.Index.Widths.Title)
	}
	if !got.Initialized() {
		t.Fatal("Initialized = false, want true")
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	partial := "project:\n  title: Minimal\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Project.Title != "Minimal" {
		t.Fatalf("Title = %q", got.Project.Title)
	}
	if got.Paths.Solutions != "solutions" || got.Index.Notation != sequence.Numeric {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.Initialized() {
		t.Fatal("Initialized = true for empty start date")
	}
}

func TestLoadRejectsUnknownNotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	bad := "index:\n  notation: roman\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, sequence.ErrNotation) {
		t.Fatalf("err = %v, want ErrNotation", err)
	}
}
