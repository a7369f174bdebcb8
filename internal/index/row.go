// Package index maintains the fixed-width markdown table that records every
// entry between two sentinel comment lines of the workspace README.
package index

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row holds the cell contents of one table line. Column order is fixed: day,
// title, solution, site, difficulty, then the optional extra column.
type Row struct {
	Day        string
	Title      string
	Solution   string
	Site       string
	Difficulty string
	Extra      string
}

// Values returns the cells in column order. The extra cell is omitted
// entirely when the sixth column is disabled.
func (r Row) Values(extra bool) []string {
	vals := []string{r.Day, r.Title, r.Solution, r.Site, r.Difficulty}
	if extra {
		vals = append(vals, r.Extra)
	}
	return vals
}

// Render produces the pipe-delimited fixed-width line for the row. Cells
// whose content is entirely dashes are padded with dashes, which keeps the
// separator line intact when it is parsed and re-rendered during a widths
// rewrite.
func (r Row) Render(w Widths, extra bool) string {
	widths := w.Values(extra)

	var b strings.Builder
	b.WriteByte('|')
	for i, v := range r.Values(extra) {
		pad := widths[i] - runewidth.StringWidth(v)
		if pad < 0 {
			pad = 0
		}
		fill := " "
		if isDashCell(v) {
			fill = "-"
		}
		b.WriteByte(' ')
		b.WriteString(v)
		b.WriteString(strings.Repeat(fill, pad))
		b.WriteString(" |")
	}
	return b.String()
}

// ParseRow splits a raw table line back into cells: segments between pipes
// are trimmed, empty segments discarded, and the remainder zipped onto the
// columns positionally. Original padding is not preserved; cell content is.
func ParseRow(line string, extra bool) Row {
	var segments []string
	for _, segment := range strings.Split(line, "|") {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	cells := make([]string, 6)
	n := 5
	if extra {
		n = 6
	}
	for i := 0; i < n && i < len(segments); i++ {
		cells[i] = segments[i]
	}

	return Row{
		Day:        cells[0],
		Title:      cells[1],
		Solution:   cells[2],
		Site:       cells[3],
		Difficulty: cells[4],
		Extra:      cells[5],
	}
}

// Header returns the label row, using extraName for the optional column.
func Header(extraName string) Row {
	return Row{
		Day:        "Day",
		Title:      "Title",
		Solution:   "Solution",
		Site:       "Site",
		Difficulty: "Difficulty",
		Extra:      extraName,
	}
}

// Separator returns the dash row matching the given widths.
func (w Widths) Separator(extra bool) Row {
	return Row{
		Day:        strings.Repeat("-", w.Day),
		Title:      strings.Repeat("-", w.Title),
		Solution:   strings.Repeat("-", w.Solution),
		Site:       strings.Repeat("-", w.Site),
		Difficulty: strings.Repeat("-", w.Difficulty),
		Extra:      strings.Repeat("-", w.Extra),
	}
}

func isDashCell(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	for _, r := range v {
		if r != '-' {
			return false
		}
	}
	return true
}
