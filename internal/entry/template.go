package entry

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

// Renderer fills the solution template with a flat field mapping.
type Renderer struct {
	TemplatePath string
}

// Render loads the template file and substitutes the mapping. Unknown keys
// render as empty strings so a hand-edited template cannot fail a run.
func (r Renderer) Render(data map[string]string) (string, error) {
	raw, err := os.ReadFile(r.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("read solution template: %w", err)
	}

	tmpl, err := template.New("solution").Option("missingkey=zero").Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parse solution template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render solution template: %w", err)
	}
	return b.String(), nil
}
