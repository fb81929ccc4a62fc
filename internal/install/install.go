// Package install drives platform adapters for a selector such as "claude"
// or "all" and reports what each one wrote.
package install

import (
	"context"
	"fmt"
	"io"

	"github.com/klauern/pbspec/internal/backup"
	"github.com/klauern/pbspec/internal/logging"
	"github.com/klauern/pbspec/internal/platform"
	"github.com/klauern/pbspec/internal/progress"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/ui"
)

// Options configures Run.
type Options struct {
	// Selector is a platform name or "all".
	Selector string
	// BaseDir is the project directory for local installs.
	BaseDir string
	Global  bool
	Force   bool
	// Backups, when set, receives a copy of every file Force overwrites.
	Backups *backup.Store
	// Out receives progress lines. Nil discards them.
	Out io.Writer
	// Progress receives the progress bar. Nil uses stderr.
	Progress io.Writer
}

// newBar is replaced in tests.
var newBar = progress.New

// Report is the outcome for one platform.
type Report struct {
	Platform string
	Written  []string
	Backups  []string
}

// Run installs every platform the selector names, in registry order. There
// is no rollback: when a platform fails, the reports of earlier platforms
// are returned with the error.
func Run(ctx context.Context, store templates.Store, opts Options) ([]Report, error) {
	names, err := platform.ResolveTargets(opts.Selector)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	log := logging.FromContext(ctx).With(logging.Operation("install"))
	bar := newBar(progress.Options{
		Max:         len(names),
		Description: "Installing",
		Writer:      opts.Progress,
	})
	defer func() { _ = bar.Abort() }()

	reports := make([]Report, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			log.Debug("install cancelled", logging.Platform(name), logging.Err(err))
			return reports, err
		}

		p, err := platform.New(name, store)
		if err != nil {
			return reports, err
		}

		report := Report{Platform: name}
		installOpts := platform.InstallOptions{
			Force:  opts.Force,
			Global: opts.Global,
			Out:    out,
		}
		if opts.Backups != nil {
			installOpts.BeforeOverwrite = func(path string) error {
				meta, err := opts.Backups.Create(path, name)
				if err != nil {
					return err
				}
				report.Backups = append(report.Backups, meta.BackupPath)
				return nil
			}
		}

		fmt.Fprintf(out, "%s\n", ui.Info(fmt.Sprintf("Installing for %s...", p.DisplayName())))
		written, err := p.Install(opts.BaseDir, installOpts)
		report.Written = written
		for _, path := range written {
			fmt.Fprintf(out, "  %s\n", ui.StatusAdded(path))
		}
		if err != nil {
			log.Debug("platform install failed",
				logging.Platform(name),
				logging.Count(len(written)),
				logging.Err(err),
			)
			reports = append(reports, report)
			return reports, fmt.Errorf("install for %s failed: %w", p.DisplayName(), err)
		}

		log.Info("installed platform",
			logging.Platform(name),
			logging.Count(len(written)),
		)
		reports = append(reports, report)
		_ = bar.Step(name)
	}
	_ = bar.Finish()

	return reports, nil
}

// Written returns the total number of files written across reports.
func Written(reports []Report) int {
	n := 0
	for _, r := range reports {
		n += len(r.Written)
	}
	return n
}
