package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/klauern/pbspec/internal/detector"
	"github.com/klauern/pbspec/internal/platform"
	"github.com/klauern/pbspec/internal/status"
)

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show which skill files are installed, modified or missing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ai",
				Value: platform.SelectorAll,
				Usage: "Platform to inspect",
			},
			&cli.BoolFlag{
				Name:    "global",
				Aliases: []string{"g"},
				Usage:   "Inspect user-level installs",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			baseDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			store, err := templateStore(cfg, baseDir)
			if err != nil {
				return err
			}

			results, err := status.Check(store, status.Options{
				Selector: cmd.String("ai"),
				BaseDir:  baseDir,
				Global:   cmd.Bool("global") || cfg.Init.Global,
				Detector: detector.New(baseDir),
			})
			if err != nil {
				return err
			}
			status.Print(stdout(cmd), results)
			return nil
		},
	}
}
