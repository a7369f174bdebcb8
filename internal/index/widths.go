package index

import "github.com/mattn/go-runewidth"

// Widths holds the reserved character width per column. Widths only ever
// grow: shrinking would leave previously written rows wider than their
// column.
type Widths struct {
	Day        int `yaml:"day"`
	Title      int `yaml:"title"`
	Solution   int `yaml:"solution"`
	Site       int `yaml:"site"`
	Difficulty int `yaml:"difficulty"`
	Extra      int `yaml:"nb"`
}

// DefaultWidths matches the scaffolded header labels.
func DefaultWidths() Widths {
	return Widths{
		Day:        5,
		Title:      7,
		Solution:   10,
		Site:       6,
		Difficulty: 12,
		Extra:      1,
	}
}

// Values returns the widths in column order, omitting the extra column when
// it is disabled.
func (w Widths) Values(extra bool) []int {
	vals := []int{w.Day, w.Title, w.Solution, w.Site, w.Difficulty}
	if extra {
		vals = append(vals, w.Extra)
	}
	return vals
}

// Need returns the rendered width required by a cell value: its display
// width plus one space of padding on each side.
func Need(v string) int {
	return runewidth.StringWidth(v) + 2
}

// Grow raises each column to the width the row requires and reports whether
// any column actually grew, which means previously written lines must be
// re-rendered.
func (w *Widths) Grow(r Row, extra bool) bool {
	grown := false
	grow := func(width *int, v string) {
		if need := Need(v); need > *width {
			*width = need
			grown = true
		}
	}

	grow(&w.Day, r.Day)
	grow(&w.Title, r.Title)
	grow(&w.Solution, r.Solution)
	grow(&w.Site, r.Site)
	grow(&w.Difficulty, r.Difficulty)
	if extra {
		grow(&w.Extra, r.Extra)
	}
	return grown
}
