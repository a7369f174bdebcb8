package cli

import (
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/faizmokh/harian/internal/config"
	"github.com/faizmokh/harian/internal/logging"
	"github.com/faizmokh/harian/internal/sequence"
	"github.com/faizmokh/harian/internal/workspace"
)

// options carries the persistent root flags into the subcommands.
type options struct {
	dir     string
	verbose bool
}

func (o *options) manager() (*workspace.Manager, error) {
	return workspace.NewManager(o.dir)
}

// open resolves the workspace and loads its settings.
func (o *options) open() (*workspace.Manager, *config.Settings, error) {
	mgr, err := o.manager()
	if err != nil {
		return nil, nil, err
	}
	s, err := config.Load(mgr.SettingsPath())
	if err != nil {
		return nil, nil, err
	}
	return mgr, s, nil
}

func (o *options) logger() *zap.Logger {
	return logging.New(o.verbose)
}

func hyphenDate(t time.Time) string {
	return t.Format(sequence.DateLayout)
}

var linkPattern = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

// linkText unwraps a markdown link cell to its display text.
func linkText(cell string) string {
	if m := linkPattern.FindStringSubmatch(cell); m != nil {
		return m[1]
	}
	return cell
}
