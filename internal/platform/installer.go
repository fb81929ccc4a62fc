package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/klauern/pbspec/internal/logging"
	"github.com/klauern/pbspec/internal/ui"
	"github.com/klauern/pbspec/internal/util"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// referencesDir is the directory created next to a primary skill file.
const referencesDir = "references"

// install runs the shared install state machine for a.
func install(a adapter, baseDir string, opts InstallOptions) ([]string, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	w := &writer{platform: a.Name(), baseDir: baseDir, opts: opts, out: out}

	for _, skill := range a.SkillNames() {
		target := a.SkillPath(baseDir, skill, opts.Global)
		skipped, err := w.write(target, logging.Skill(skill), func() (string, error) {
			raw, err := a.load(skill)
			if err != nil {
				return "", fmt.Errorf("failed to load template for %s: %w", skill, err)
			}
			return a.Render(skill, raw), nil
		})
		if err != nil {
			return w.installed, err
		}

		refs, err := a.references(skill)
		if err != nil {
			return w.installed, fmt.Errorf("failed to load references for %s: %w", skill, err)
		}
		if len(refs) == 0 {
			continue
		}
		refsDir := filepath.Join(filepath.Dir(target), referencesDir)

		// A skipped skill contributes nothing, its references included.
		if skipped {
			if err := w.skipReferences(refsDir, slices.Sorted(maps.Keys(refs))); err != nil {
				return w.installed, err
			}
			continue
		}

		if err := os.MkdirAll(refsDir, dirPerm); err != nil {
			return w.installed, fmt.Errorf("failed to create %s: %w", refsDir, err)
		}
		for _, name := range slices.Sorted(maps.Keys(refs)) {
			content := refs[name]
			_, err := w.write(filepath.Join(refsDir, name), logging.Reference(name), func() (string, error) {
				return content, nil
			})
			if err != nil {
				return w.installed, err
			}
		}
	}

	logging.Debug("platform install finished",
		logging.Platform(a.Name()),
		logging.Count(len(w.installed)),
	)
	return w.installed, nil
}

// writer applies the exists/force/write decision to single files and
// collects the display paths of what it wrote.
type writer struct {
	platform  string
	baseDir   string
	opts      InstallOptions
	out       io.Writer
	installed []string
}

// write renders and writes path unless it exists and Force is off. skipped
// reports whether the existing file was left alone.
func (w *writer) write(path string, attr slog.Attr, render func() (string, error)) (skipped bool, err error) {
	display := util.DisplayPath(path, w.baseDir)

	exists, err := fileExists(path)
	if err != nil {
		return false, err
	}
	if exists && !w.opts.Force {
		w.skip(path, attr)
		return true, nil
	}

	content, err := render()
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", display, err)
	}
	if exists && w.opts.BeforeOverwrite != nil {
		if err := w.opts.BeforeOverwrite(path); err != nil {
			return false, fmt.Errorf("failed before overwriting %s: %w", display, err)
		}
	}
	// #nosec G306 - installed skills are meant to be read by other tools
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", display, err)
	}

	logging.Debug("wrote file",
		logging.Platform(w.platform),
		attr,
		logging.Path(path),
	)
	w.installed = append(w.installed, display)
	return false, nil
}

// skipReferences prints skip notices for the references of a skipped skill
// that exist on disk. Missing ones stay missing until --force.
func (w *writer) skipReferences(refsDir string, names []string) error {
	for _, name := range names {
		path := filepath.Join(refsDir, name)
		exists, err := fileExists(path)
		if err != nil {
			return err
		}
		if !exists {
			logging.Debug("reference of skipped skill left missing",
				logging.Platform(w.platform),
				logging.Reference(name),
				logging.Path(path),
			)
			continue
		}
		w.skip(path, logging.Reference(name))
	}
	return nil
}

func (w *writer) skip(path string, attr slog.Attr) {
	display := util.DisplayPath(path, w.baseDir)
	fmt.Fprintf(w.out, "  %s\n", ui.StatusSkipped(fmt.Sprintf("Skipping %s (exists, use --force)", display)))
	logging.Debug("skipped existing file",
		logging.Platform(w.platform),
		attr,
		logging.Path(path),
	)
}

// plan resolves every target of a without touching the file system.
func plan(a adapter, baseDir string, global bool) ([]Target, error) {
	var targets []Target
	for _, skill := range a.SkillNames() {
		raw, err := a.load(skill)
		if err != nil {
			return nil, fmt.Errorf("failed to load template for %s: %w", skill, err)
		}
		path := a.SkillPath(baseDir, skill, global)
		targets = append(targets, Target{
			Platform: a.Name(),
			Skill:    skill,
			Path:     path,
			Content:  a.Render(skill, raw),
		})

		refs, err := a.references(skill)
		if err != nil {
			return nil, fmt.Errorf("failed to load references for %s: %w", skill, err)
		}
		refsDir := filepath.Join(filepath.Dir(path), referencesDir)
		for _, name := range slices.Sorted(maps.Keys(refs)) {
			targets = append(targets, Target{
				Platform:  a.Name(),
				Skill:     skill,
				Reference: name,
				Path:      filepath.Join(refsDir, name),
				Content:   refs[name],
			})
		}
	}
	return targets, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}
