package index

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkerStart and MarkerEnd bound the table inside the destination document.
// The match is exact; the warning text is part of the sentinel.
const (
	MarkerStart = "<!-- Index Start - WARNING: Do not delete or modify this markdown comment. -->"
	MarkerEnd   = "<!-- Index End - WARNING: Do not delete or modify this markdown comment. -->"
)

// ErrMarkersNotFound is returned when the document is missing either
// sentinel comment.
var ErrMarkersNotFound = errors.New("index markers not found")

// Rewriter mutates the sentinel-bounded table of a single document. Every
// operation is a whole-file read-modify-write committed atomically.
type Rewriter struct {
	Path  string
	Extra bool
}

// Append inserts the entry row immediately before the end marker, preceded
// by one blank placeholder row per gap id. When reformat is set, the header,
// separator, and all existing data rows are re-rendered at the new widths
// first.
func (rw Rewriter) Append(entry Row, gapIDs []string, w Widths, reformat bool) error {
	lines, start, end, err := rw.load()
	if err != nil {
		return err
	}

	if reformat {
		for i := start + 1; i < end; i++ {
			lines[i] = ParseRow(lines[i], rw.Extra).Render(w, rw.Extra)
		}
	}

	for _, id := range gapIDs {
		lines = insertLine(lines, end, Row{Day: id}.Render(w, rw.Extra))
		end++
	}
	lines = insertLine(lines, end, entry.Render(w, rw.Extra))

	return writeLines(rw.Path, lines)
}

// Rows returns the parsed data rows, skipping the header and separator.
func (rw Rewriter) Rows() ([]Row, error) {
	lines, start, end, err := rw.load()
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i := start + 3; i < end; i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		rows = append(rows, ParseRow(lines[i], rw.Extra))
	}
	return rows, nil
}

// Region returns the raw table markdown between the markers, for rendering.
func (rw Rewriter) Region() (string, error) {
	lines, start, end, err := rw.load()
	if err != nil {
		return "", err
	}
	return strings.Join(lines[start+1:end], "\n") + "\n", nil
}

func (rw Rewriter) load() ([]string, int, int, error) {
	data, err := os.ReadFile(rw.Path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("read index document: %w", err)
	}

	lines := splitLines(string(data))

	start, end := -1, -1
	for i, line := range lines {
		if strings.Contains(line, MarkerStart) {
			start = i
		}
		if strings.Contains(line, MarkerEnd) {
			end = i
		}
	}
	if start == -1 || end == -1 || end <= start {
		return nil, 0, 0, fmt.Errorf("%w in %s", ErrMarkersNotFound, rw.Path)
	}

	return lines, start, end, nil
}

func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Remove the trailing empty element produced by Split when the input ends with a newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func insertLine(lines []string, index int, line string) []string {
	if index < 0 || index > len(lines) {
		return append(lines, line)
	}
	lines = append(lines[:index], append([]string{line}, lines[index:]...)...)
	return lines
}

func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "harian-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	content := strings.Join(lines, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	}

	return os.Rename(temp.Name(), path)
}
