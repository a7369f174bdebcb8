// Package config loads and persists the workspace settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/harian/internal/index"
	"github.com/faizmokh/harian/internal/sequence"
)

// FileName is the settings file kept at the workspace root. Its presence
// marks a directory as a harian workspace.
const FileName = "harian.yml"

// ErrNotFound is returned when the settings file does not exist.
var ErrNotFound = errors.New("settings file not found")

// Settings is everything harian persists between runs.
type Settings struct {
	Project ProjectSettings `yaml:"project"`
	Paths   PathSettings    `yaml:"paths"`
	Index   IndexSettings   `yaml:"index"`
	Sites   []string        `yaml:"sites"`
}

// ProjectSettings names the project and records when it started.
type ProjectSettings struct {
	Title string `yaml:"title"`
	// Start is the project start date with non-breaking hyphens. Empty means
	// the workspace has not been initialized.
	Start string `yaml:"start"`
}

// PathSettings holds directory names relative to the workspace root.
type PathSettings struct {
	Solutions string `yaml:"solutions"`
	Templates string `yaml:"templates"`
}

// IndexSettings controls the shape of the README index table.
type IndexSettings struct {
	Notation sequence.Notation `yaml:"notation"`

	// Sparse backfills a blank row for every skipped sequence unit instead
	// of letting the Day column jump.
	Sparse bool `yaml:"sparse"`

	// ExtraColumn enables the optional sixth column.
	ExtraColumn bool         `yaml:"extra_column"`
	ExtraName   string       `yaml:"extra_name"`
	Widths      index.Widths `yaml:"widths"`
}

// Default returns the settings a fresh workspace starts from.
func Default() *Settings {
	return &Settings{
		Project: ProjectSettings{
			Title: "[ ] Everyday",
		},
		Paths: PathSettings{
			Solutions: "solutions",
			Templates: "templates",
		},
		Index: IndexSettings{
			Notation:  sequence.Numeric,
			ExtraName: "NB",
			Widths:    index.DefaultWidths(),
		},
		Sites: []string{"Codewars", "DataLemur", "LeetCode"},
	}
}

// Load reads settings from path, layering the file over the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s (run 'harian init' first)", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings to path via a temp file and atomic rename.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "harian-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}
	return os.Rename(temp.Name(), path)
}

// Validate rejects settings no run should proceed with.
func (s *Settings) Validate() error {
	if !s.Index.Notation.Valid() {
		return fmt.Errorf("%w: %q (expected %q or %q)", sequence.ErrNotation, s.Index.Notation, sequence.Numeric, sequence.Date)
	}
	if s.Paths.Solutions == "" || s.Paths.Templates == "" {
		return errors.New("settings paths must not be empty")
	}
	return nil
}

// Initialized reports whether the project start date has been recorded.
func (s *Settings) Initialized() bool {
	return s.Project.Start != ""
}
