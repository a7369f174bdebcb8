// Package ui owns the Bubble Tea entry form.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/harian/internal/entry"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	focusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// field pairs a label with either a single-line input or a textarea.
type field struct {
	label     string
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

func (f *field) focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *field) blur() {
	if f.multiline {
		f.area.Blur()
	} else {
		f.input.Blur()
	}
}

func (f *field) value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f *field) view(focused bool) string {
	label := labelStyle.Render(f.label)
	if focused {
		label = focusedStyle.Render(f.label)
	}
	var body string
	if f.multiline {
		body = f.area.View()
	} else {
		body = f.input.View()
	}
	return label + "\n" + body
}

// Model collects the fields of one entry submission.
type Model struct {
	fields []field
	focus  int

	errorLine string
	submitted bool
	cancelled bool
}

// Field order mirrors the index columns, then the long-form sections.
const (
	fieldTitle = iota
	fieldURL
	fieldSite
	fieldDifficulty
	fieldProblem
	fieldSubmitted
	fieldReference
	fieldNotes
	fieldNB
)

// NewModel builds the form. The NB field is only present when the extra
// index column is enabled.
func NewModel(sites []string, nbEnabled bool, nbName string) Model {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 0
		in.Width = 60
		return in
	}
	newArea := func(placeholder string, height int) textarea.Model {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.SetWidth(72)
		ta.SetHeight(height)
		return ta
	}

	fields := []field{
		{label: "Title", input: newInput("Problem title")},
		{label: "URL", input: newInput("https://...")},
		{label: "Site", input: newInput(strings.Join(sites, " / "))},
		{label: "Difficulty", input: newInput("Easy / Medium / Hard")},
		{label: "Problem", multiline: true, area: newArea("Problem description", 4)},
		{label: "Submitted Solution", multiline: true, area: newArea("Your solution", 6)},
		{label: "Site Solution", multiline: true, area: newArea("Reference solution", 6)},
		{label: "Notes", multiline: true, area: newArea("Anything worth remembering", 3)},
	}
	if nbEnabled {
		fields = append(fields, field{label: nbName, input: newInput("Quick note for the index")})
	}

	return Model{fields: fields}
}

// Init focuses the first field.
func (m Model) Init() tea.Cmd {
	return m.fields[fieldTitle].focus()
}

// Update handles navigation, submission, and delegation to the focused
// field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "ctrl+s":
		return m.submit()
	case "tab":
		return m.moveFocus(1)
	case "shift+tab":
		return m.moveFocus(-1)
	case "down":
		if !m.fields[m.focus].multiline {
			return m.moveFocus(1)
		}
	case "up":
		if !m.fields[m.focus].multiline {
			return m.moveFocus(-1)
		}
	case "enter":
		if !m.fields[m.focus].multiline {
			if m.focus == len(m.fields)-1 {
				return m.submit()
			}
			return m.moveFocus(1)
		}
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.fields[m.focus].update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.fields[m.focus].blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.errorLine = ""
	return m, m.fields[m.focus].focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if err := m.Input().Validate(); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	m.submitted = true
	return m, tea.Quit
}

// View renders all fields with the focused one highlighted.
func (m Model) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New entry"))
	b.WriteString("\n")
	for i := range m.fields {
		b.WriteString(m.fields[i].view(i == m.focus))
		b.WriteString("\n\n")
	}
	if m.errorLine != "" {
		b.WriteString(errorStyle.Render(m.errorLine))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab/shift+tab move · ctrl+s save · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Submitted reports whether the form was confirmed rather than cancelled.
func (m Model) Submitted() bool {
	return m.submitted
}

// Input assembles the entry fields as currently typed.
func (m Model) Input() entry.Input {
	in := entry.Input{
		Title:      m.fields[fieldTitle].value(),
		URL:        m.fields[fieldURL].value(),
		Site:       m.fields[fieldSite].value(),
		Difficulty: m.fields[fieldDifficulty].value(),
		Problem:    m.fields[fieldProblem].value(),
		Submitted:  m.fields[fieldSubmitted].value(),
		Reference:  m.fields[fieldReference].value(),
		Notes:      m.fields[fieldNotes].value(),
	}
	if len(m.fields) > fieldNB {
		in.NB = m.fields[fieldNB].value()
	}
	return in
}

// Run blocks on the form and returns the collected input, or ok=false when
// the user cancelled.
func Run(sites []string, nbEnabled bool, nbName string) (entry.Input, bool, error) {
	final, err := tea.NewProgram(NewModel(sites, nbEnabled, nbName)).Run()
	if err != nil {
		return entry.Input{}, false, fmt.Errorf("run entry form: %w", err)
	}
	m, ok := final.(Model)
	if !ok || !m.Submitted() {
		return entry.Input{}, false, nil
	}
	return m.Input(), true, nil
}
