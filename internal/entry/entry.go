// Package entry builds one logged unit of work and drives the run pipeline
// that records it.
package entry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/faizmokh/harian/internal/index"
	"github.com/faizmokh/harian/internal/sequence"
)

// placeholderNB stands in for an empty quick-note in the solution file. It
// renders blank in the index.
const placeholderNB = "TBD"

// Input carries the caller-supplied fields for one entry. The form (or flag)
// layer is responsible for collecting them; Validate enforces the required
// ones.
type Input struct {
	Title      string
	URL        string
	Site       string
	Difficulty string
	Problem    string
	Submitted  string
	Reference  string
	Notes      string
	NB         string
}

// Clean trims surrounding whitespace from every field and substitutes the
// NB placeholder when the quick-note is empty.
func (in Input) Clean() Input {
	trim := func(v string) string { return strings.TrimSpace(v) }
	in.Title = trim(in.Title)
	in.URL = trim(in.URL)
	in.Site = trim(in.Site)
	in.Difficulty = trim(in.Difficulty)
	in.Problem = trim(in.Problem)
	in.Submitted = trim(in.Submitted)
	in.Reference = trim(in.Reference)
	in.Notes = trim(in.Notes)
	in.NB = trim(in.NB)
	if in.NB == "" {
		in.NB = placeholderNB
	}
	return in
}

// Validate checks the fields the index cannot do without.
func (in Input) Validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"url", in.URL},
		{"site", in.Site},
		{"difficulty", in.Difficulty},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// ErrMissingFields is returned when required entry fields are blank.
var ErrMissingFields = errors.New("missing required fields")

var slugStrip = regexp.MustCompile(`[^a-z0-9\s-]`)

// Slug derives the filename fragment from a title: lowercased, stripped of
// everything but letters, digits, spaces and hyphens, with spaces and
// hyphens becoming underscores.
func Slug(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Entry is one logged unit of work, fixed at derivation time and passed by
// value through the pipeline stages.
type Entry struct {
	Input

	// SeqMain is the primary ordering key ("001" or a dated id).
	SeqMain string
	// SeqFull is SeqMain plus the two digit suffix, e.g. "001_01".
	SeqFull string
	// Filename is the solution file name, "{SeqFull}_{slug}.md".
	Filename string
}

// New fixes an entry from cleaned input and a sequence derivation.
func New(in Input, d sequence.Derivation) Entry {
	return Entry{
		Input:    in,
		SeqMain:  d.Main,
		SeqFull:  d.Full,
		Filename: fmt.Sprintf("%s_%s.md", d.Full, Slug(in.Title)),
	}
}

// Row renders the entry's index table cells. The title links to the problem
// and the solution cell links to the stored file; an NB placeholder renders
// blank.
func (e Entry) Row(solutionsDir string) index.Row {
	nb := e.NB
	if nb == placeholderNB {
		nb = ""
	}
	return index.Row{
		Day:        e.SeqFull,
		Title:      fmt.Sprintf("[%s](%s)", e.Title, e.URL),
		Solution:   fmt.Sprintf("[Solution](%s/%s)", solutionsDir, e.Filename),
		Site:       e.Site,
		Difficulty: e.Difficulty,
		Extra:      nb,
	}
}

// TemplateData flattens the entry into the string mapping the solution
// template consumes.
func (e Entry) TemplateData() map[string]string {
	return map[string]string{
		"day":                e.SeqMain,
		"seq_full":           e.SeqFull,
		"filename":           e.Filename,
		"title":              e.Title,
		"url":                e.URL,
		"site":               e.Site,
		"difficulty":         e.Difficulty,
		"problem":            e.Problem,
		"submitted_solution": e.Submitted,
		"site_solution":      e.Reference,
		"notes":              e.Notes,
		"nb":                 e.NB,
	}
}
