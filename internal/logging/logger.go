// Package logging configures pb-spec's slog logger from the global CLI
// flags and carries it through command contexts.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Levels selected by the --verbose and --debug flags.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
)

var (
	defaultLogger *slog.Logger
	defaultOnce   sync.Once
)

// Options configures New.
type Options struct {
	Level slog.Level
	// Output defaults to os.Stderr.
	Output io.Writer
	// AddSource includes file and line, used with --debug.
	AddSource bool
}

// DefaultOptions keeps the CLI quiet: only warnings reach stderr.
func DefaultOptions() Options {
	return Options{
		Level:  LevelWarn,
		Output: os.Stderr,
	}
}

// FlagOptions returns the options for the global --verbose and --debug
// flags. --debug wins and also records source locations.
func FlagOptions(verbose, debug bool, output io.Writer) Options {
	opts := DefaultOptions()
	if output != nil {
		opts.Output = output
	}
	switch {
	case debug:
		opts.Level = LevelDebug
		opts.AddSource = true
	case verbose:
		opts.Level = LevelInfo
	}
	return opts
}

// New returns a text logger.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return slog.New(slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: opts.AddSource,
	}))
}

// Default returns the process logger, creating a quiet one on first use.
func Default() *slog.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(DefaultOptions())
	})
	return defaultLogger
}

// SetDefault replaces the process logger and slog's default.
func SetDefault(logger *slog.Logger) {
	defaultOnce.Do(func() {})
	defaultLogger = logger
	slog.SetDefault(logger)
}

// Debug logs through the process logger.
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info logs through the process logger.
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

type loggerKey struct{}

// NewContext attaches logger to ctx.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or the process logger.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return Default()
}

// Attribute keys shared by every log line.
const (
	KeyPlatform  = "platform"
	KeySkill     = "skill"
	KeyReference = "reference"
	KeyPath      = "path"
	KeyOperation = "operation"
	KeyCount     = "count"
	KeyError     = "error"
)

// Platform names the platform being installed.
func Platform(p string) slog.Attr {
	return slog.String(KeyPlatform, p)
}

// Skill names a skill.
func Skill(name string) slog.Attr {
	return slog.String(KeySkill, name)
}

// Reference names a reference file of a skill.
func Reference(name string) slog.Attr {
	return slog.String(KeyReference, name)
}

// Path is a file system path.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Operation names the command or step, e.g. "init".
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Count is a number of files or platforms.
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Err records err. A nil error yields an empty attribute, which slog drops.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}
