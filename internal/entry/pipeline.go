package entry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/faizmokh/harian/internal/config"
	"github.com/faizmokh/harian/internal/index"
	"github.com/faizmokh/harian/internal/sequence"
	"github.com/faizmokh/harian/internal/workspace"
)

// Pipeline records one entry: sequence derivation, optional gap backfill,
// row formatting and width tracking, the index rewrite, the solution file,
// and finally the persisted widths. One run is single-shot and synchronous;
// individual writes are atomic but the run as a whole is not transactional.
type Pipeline struct {
	Workspace *workspace.Manager
	Settings  *config.Settings
	Log       *zap.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// Result summarizes what a run changed.
type Result struct {
	Entry Entry
	// Gaps lists the backfilled main ids, oldest first.
	Gaps []string
	// Reformatted is set when column growth forced a rewrite of the
	// existing table lines.
	Reformatted bool
	// SolutionPath is the stored solution file.
	SolutionPath string
}

// Run processes one cleaned submission end to end. The settings' column
// widths are updated in place and persisted before returning.
func (p *Pipeline) Run(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	in = in.Clean()
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	s := p.Settings
	if !s.Initialized() {
		return Result{}, fmt.Errorf("%w: project start date unset", workspace.ErrNotInitialized)
	}

	files, err := p.Workspace.SolutionFiles(s)
	if err != nil {
		return Result{}, err
	}

	d, err := sequence.Derive(s.Index.Notation, s.Project.Start, now, files)
	if err != nil {
		return Result{}, err
	}
	if d.SameDay {
		log.Info("more than one entry today", zap.String("seq", d.Full))
	}
	if d.OutOfOrder {
		log.Warn("stored sequence is ahead of today; continuing with derived value",
			zap.String("stored", d.Prev.String()),
			zap.String("derived", d.Main))
	}

	e := New(in, d)

	var gaps []string
	if s.Index.Sparse && d.Prev != nil {
		gaps = sequence.Between(*d.Prev, d.Next)
	}

	row := e.Row(s.Paths.Solutions)
	widths := s.Index.Widths
	reformat := widths.Grow(row, s.Index.ExtraColumn)

	content, err := Renderer{TemplatePath: p.Workspace.TemplatePath(s)}.Render(e.TemplateData())
	if err != nil {
		return Result{}, err
	}
	solutionPath, err := p.Workspace.WriteSolution(s, e.Filename, content)
	if err != nil {
		return Result{}, err
	}

	rw := index.Rewriter{Path: p.Workspace.ReadmePath(), Extra: s.Index.ExtraColumn}
	if err := rw.Append(row, gaps, widths, reformat); err != nil {
		return Result{}, err
	}

	// Widths are persisted whether or not they grew, mirroring the close
	// step of a run.
	s.Index.Widths = widths
	if err := s.Save(p.Workspace.SettingsPath()); err != nil {
		return Result{}, err
	}

	return Result{
		Entry:        e,
		Gaps:         gaps,
		Reformatted:  reformat,
		SolutionPath: solutionPath,
	}, nil
}
