// Package progress provides a progress indicator for multi-platform installs.
package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/klauern/pbspec/internal/logging"
	"github.com/klauern/pbspec/internal/ui"
)

// Bar wraps progressbar with pb-spec's color and logging settings. A
// disabled Bar accepts every call and renders nothing.
type Bar struct {
	bar     *progressbar.ProgressBar
	enabled bool
	done    bool
	desc    string
}

// Options configures the progress bar behavior.
type Options struct {
	// Max is the number of steps.
	Max int
	// Description is the prefix text shown before the bar.
	Description string
	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer
}

// New creates a progress bar. The bar is only shown when colors are
// enabled, the writer is a terminal, and debug logging is off.
func New(opts Options) *Bar {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	return build(opts, shouldShowProgress(opts.Writer))
}

func build(opts Options, enabled bool) *Bar {
	b := &Bar{
		enabled: enabled,
		desc:    opts.Description,
	}
	if !b.enabled {
		logging.Debug(fmt.Sprintf("%s started", opts.Description), logging.Count(opts.Max))
		return b
	}

	b.bar = progressbar.NewOptions(
		opts.Max,
		progressbar.OptionSetDescription(opts.Description),
		progressbar.OptionSetWriter(opts.Writer),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionEnableColorCodes(ui.IsColorEnabled()),
	)
	return b
}

// Enabled reports whether the bar renders anything.
func (b *Bar) Enabled() bool {
	return b.enabled
}

// Step advances the bar by one and updates its description.
func (b *Bar) Step(desc string) error {
	b.desc = desc
	if !b.enabled {
		return nil
	}
	b.bar.Describe(desc)
	return b.bar.Add(1)
}

// Finish completes the bar.
func (b *Bar) Finish() error {
	if b.done {
		return nil
	}
	b.done = true
	if !b.enabled {
		logging.Debug(fmt.Sprintf("%s completed", b.desc))
		return nil
	}
	return b.bar.Finish()
}

// Abort erases the bar without completing it. It is a no-op after Finish.
func (b *Bar) Abort() error {
	if b.done {
		return nil
	}
	b.done = true
	if !b.enabled {
		logging.Debug(fmt.Sprintf("%s aborted", b.desc))
		return nil
	}
	return b.bar.Clear()
}

// Done reports whether Finish or Abort has been called.
func (b *Bar) Done() bool {
	return b.done
}

func shouldShowProgress(w io.Writer) bool {
	if !ui.IsColorEnabled() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return !logging.Default().Enabled(context.Background(), logging.LevelDebug)
}
