// Package workspace locates the harian workspace on disk and scaffolds its
// initial layout.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/faizmokh/harian/internal/config"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// ReadmeFile is the document carrying the index table.
const ReadmeFile = "README.md"

// TemplateFile is the solution template inside the templates directory.
const TemplateFile = "solution.md"

// EnvOverride names the environment variable that pins the workspace root.
const EnvOverride = "HARIAN_DIR"

var entryPattern = glob.MustCompile("*.md")

// Manager centralizes where workspace files live on disk and how they are
// named.
type Manager struct {
	root string
}

// NewManager constructs a Manager rooted at the provided directory. If root
// is empty it falls back to $HARIAN_DIR, then to the nearest ancestor
// directory holding a settings file, then to the working directory.
func NewManager(root string) (*Manager, error) {
	var err error
	if root == "" {
		root, err = Resolve()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Manager{root: abs}, nil
}

// Root returns the workspace root directory.
func (m *Manager) Root() string {
	return m.root
}

// SettingsPath returns the absolute path of the settings file.
func (m *Manager) SettingsPath() string {
	return filepath.Join(m.root, config.FileName)
}

// ReadmePath returns the absolute path of the index document.
func (m *Manager) ReadmePath() string {
	return filepath.Join(m.root, ReadmeFile)
}

// SolutionsPath resolves the solutions directory named by the settings.
func (m *Manager) SolutionsPath(s *config.Settings) string {
	return filepath.Join(m.root, s.Paths.Solutions)
}

// TemplatePath resolves the solution template named by the settings.
func (m *Manager) TemplatePath(s *config.Settings) string {
	return filepath.Join(m.root, s.Paths.Templates, TemplateFile)
}

// SolutionFiles lists the stored entry filenames in ascending order. A
// missing directory is an error: it means the workspace was initialized and
// then damaged, and sequence derivation cannot proceed.
func (m *Manager) SolutionFiles(s *config.Settings) ([]string, error) {
	dir := m.SolutionsPath(s)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan solutions directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !entryPattern.Match(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// WriteSolution stores a rendered solution file under the solutions
// directory. The file must not already exist.
func (m *Manager) WriteSolution(s *config.Settings, filename, content string) (string, error) {
	path := filepath.Join(m.SolutionsPath(s), filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePermissions)
	if err != nil {
		return "", fmt.Errorf("create solution file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return "", fmt.Errorf("write solution file: %w", err)
	}
	return path, nil
}

// Resolve determines the workspace root: $HARIAN_DIR wins, then the nearest
// ancestor of the working directory containing a settings file, then the
// working directory itself (the init case).
func Resolve() (string, error) {
	if override, ok := os.LookupEnv(EnvOverride); ok && override != "" {
		return normalizePath(override)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; {
		if isFile(filepath.Join(dir, config.FileName)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

func normalizePath(input string) (string, error) {
	if len(input) > 0 && input[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, input[1:])
	}
	return input, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ErrNotInitialized is returned by helpers that require a scaffolded
// workspace.
var ErrNotInitialized = errors.New("workspace not initialized")
