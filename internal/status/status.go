// Package status compares installed skill files with what an install would
// write, without modifying anything.
package status

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klauern/pbspec/internal/detector"
	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/platform"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/ui"
	"github.com/klauern/pbspec/internal/util"
)

// State is the condition of one target file.
type State string

const (
	// Installed means the file matches the current rendering.
	Installed State = "installed"
	// Modified means the file exists with a valid envelope but different content.
	Modified State = "modified"
	// Invalid means the file exists but its envelope does not parse.
	Invalid State = "invalid"
	// Missing means the file does not exist.
	Missing State = "missing"
)

// FileStatus is the state of a single target.
type FileStatus struct {
	Target  platform.Target
	Display string
	State   State
	// Problem explains an Invalid state.
	Problem string
}

// PlatformStatus groups file states for a platform.
type PlatformStatus struct {
	Platform    string
	DisplayName string
	Detected    bool
	Files       []FileStatus
}

// Counts tallies files by state.
func (p PlatformStatus) Counts() map[State]int {
	counts := make(map[State]int, 4)
	for _, f := range p.Files {
		counts[f.State]++
	}
	return counts
}

// Options configures Check.
type Options struct {
	Selector string
	BaseDir  string
	Global   bool
	// Detector reports whether the tool is present. Nil skips detection.
	Detector *detector.Detector
}

// Check reports the state of every file the selector's platforms install.
func Check(store templates.Store, opts Options) ([]PlatformStatus, error) {
	names, err := platform.ResolveTargets(opts.Selector)
	if err != nil {
		return nil, err
	}

	results := make([]PlatformStatus, 0, len(names))
	for _, name := range names {
		p, err := platform.New(name, store)
		if err != nil {
			return nil, err
		}
		targets, err := p.Plan(opts.BaseDir, opts.Global)
		if err != nil {
			return nil, fmt.Errorf("failed to plan %s: %w", p.DisplayName(), err)
		}

		ps := PlatformStatus{Platform: name, DisplayName: p.DisplayName()}
		if opts.Detector != nil {
			ps.Detected = opts.Detector.IsInstalled(model.Platform(name))
		}
		for _, target := range targets {
			file, err := checkFile(p, target)
			if err != nil {
				return nil, err
			}
			file.Display = util.DisplayPath(target.Path, opts.BaseDir)
			ps.Files = append(ps.Files, file)
		}
		results = append(results, ps)
	}
	return results, nil
}

func checkFile(p platform.Platform, target platform.Target) (FileStatus, error) {
	st := FileStatus{Target: target}

	// #nosec G304 - target paths are resolved by the platform adapters
	data, err := os.ReadFile(target.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		st.State = Missing
		return st, nil
	case err != nil:
		return st, fmt.Errorf("failed to read %s: %w", target.Path, err)
	}

	content := string(data)
	if content == target.Content {
		st.State = Installed
		return st, nil
	}
	if !target.IsReference() {
		if err := p.Validate(content); err != nil {
			st.State = Invalid
			st.Problem = err.Error()
			return st, nil
		}
	}
	st.State = Modified
	return st, nil
}

// Print writes a human-readable report.
func Print(w io.Writer, results []PlatformStatus) {
	title := cases.Title(language.English)
	for _, ps := range results {
		detected := ui.Dim("not detected")
		if ps.Detected {
			detected = ui.Success("detected")
		}
		fmt.Fprintf(w, "%s (%s)\n", ui.Header(ps.DisplayName), detected)

		for _, f := range ps.Files {
			label := title.String(string(f.State))
			line := fmt.Sprintf("%-9s %s", label, f.Display)
			switch f.State {
			case Installed:
				fmt.Fprintf(w, "  %s\n", ui.StatusSuccess(line))
			case Modified:
				fmt.Fprintf(w, "  %s\n", ui.StatusWarning(line))
			case Invalid:
				fmt.Fprintf(w, "  %s\n", ui.StatusError(line+": "+f.Problem))
			case Missing:
				fmt.Fprintf(w, "  %s\n", ui.StatusMissing(line))
			}
		}

		counts := ps.Counts()
		fmt.Fprintf(w, "  %s\n\n", ui.Dim(fmt.Sprintf("%d installed, %d modified, %d invalid, %d missing",
			counts[Installed], counts[Modified], counts[Invalid], counts[Missing])))
	}
}
