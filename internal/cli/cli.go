// Package cli provides the command-line interface for pb-spec.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/klauern/pbspec/internal/config"
	"github.com/klauern/pbspec/internal/logging"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/ui"
	"github.com/klauern/pbspec/internal/util"
)

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "pb-spec",
		Usage:   "Install Plan-Build skills for AI coding assistants",
		Version: ResolveVersion(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			ctx = logging.NewContext(ctx, configureLogging(cmd))
			cfg, err := config.Load()
			if err != nil {
				logging.FromContext(ctx).Debug("config load failed",
					logging.Path(config.FilePath()),
					logging.Err(err),
				)
				return ctx, fmt.Errorf("failed to load config %s: %w", config.FilePath(), err)
			}
			if err := configureColors(cmd, cfg); err != nil {
				return ctx, err
			}
			return withConfig(ctx, cfg), nil
		},
		Commands: []*cli.Command{
			initCommand(),
			statusCommand(),
			versionCommand(),
			updateCommand(),
			configCommand(),
			backupCommand(),
		},
	}
	return app.Run(ctx, args)
}

// configureColors applies --no-color, then the output.color setting.
func configureColors(cmd *cli.Command, cfg *config.Config) error {
	if cmd.Bool("no-color") {
		ui.DisableColors()
		return nil
	}
	return ui.ConfigureColors(cfg.Output.Color)
}

// configureLogging installs the logger selected by --verbose and --debug as
// the process default and returns it for the command context.
func configureLogging(cmd *cli.Command) *slog.Logger {
	opts := logging.FlagOptions(cmd.Bool("verbose"), cmd.Bool("debug"), cmd.Root().ErrWriter)
	logger := logging.New(opts)
	logging.SetDefault(logger)
	logger.Debug("logging configured", slog.String("level", opts.Level.String()))
	return logger
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the configuration loaded in Before, or defaults.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.Default()
}

// templateStore returns the on-disk override when templates.dir is set,
// else the embedded templates.
func templateStore(cfg *config.Config, baseDir string) (templates.Store, error) {
	if cfg.Templates.Dir == "" {
		return templates.Embedded(), nil
	}
	return templates.Dir(util.ExpandPath(cfg.Templates.Dir, baseDir))
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
