package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faizmokh/harian/internal/config"
	"github.com/faizmokh/harian/internal/index"
)

// Scaffold creates the workspace skeleton: the solutions and templates
// directories, the README with an empty sentinel-bounded index table, and
// the solution template. Existing files are left alone so a partially
// scaffolded workspace can be repaired by running init again.
func (m *Manager) Scaffold(s *config.Settings) error {
	for _, dir := range []string{m.SolutionsPath(s), filepath.Join(m.root, s.Paths.Templates)} {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("create directories: %w", err)
		}
	}

	if err := seedFile(m.ReadmePath(), readmeSkeleton(s)); err != nil {
		return fmt.Errorf("write README: %w", err)
	}
	if err := seedFile(m.TemplatePath(s), templateSkeleton(s)); err != nil {
		return fmt.Errorf("write solution template: %w", err)
	}
	return nil
}

// seedFile writes content only when the file is absent or empty.
func seedFile(path string, content string) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() > 0 {
		return nil
	}
	_, err = file.WriteString(content)
	return err
}

func readmeSkeleton(s *config.Settings) string {
	extra := s.Index.ExtraColumn
	w := s.Index.Widths

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Project.Title)
	b.WriteString("A daily practice log maintained with the harian CLI.\n\n")
	b.WriteString("## Index\n\n")
	b.WriteString(index.MarkerStart + "\n")
	b.WriteString(index.Header(s.Index.ExtraName).Render(w, extra) + "\n")
	b.WriteString(w.Separator(extra).Render(w, extra) + "\n")
	b.WriteString(index.MarkerEnd + "\n")
	return b.String()
}

func templateSkeleton(s *config.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s \\#{{.seq_full}}\n\n", s.Project.Title)
	b.WriteString(`## Problem

[{{.title}}]({{.url}})

- Site: {{.site}}
- Difficulty: {{.difficulty}}

{{.problem}}

## Submitted Solution

` + "```\n{{.submitted_solution}}\n```" + `

## Site Solution

` + "```\n{{.site_solution}}\n```" + `

## Notes

{{.notes}}
`)
	if s.Index.ExtraColumn {
		fmt.Fprintf(&b, "\n## %s\n\n{{.nb}}\n", s.Index.ExtraName)
	}
	return b.String()
}
