package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/klauern/pbspec/internal/backup"
	"github.com/klauern/pbspec/internal/install"
	"github.com/klauern/pbspec/internal/logging"
	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/platform"
	"github.com/klauern/pbspec/internal/ui"
	"github.com/klauern/pbspec/internal/ui/tui"
)

// isInteractive and pickPlatform are replaced in tests.
var (
	isInteractive = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	pickPlatform = func() (string, error) {
		return tui.RunPlatformPicker(platformChoices(), nil, nil)
	}
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Install pb-spec skill files into the current project",
		UsageText: "pb-spec init --ai <platform> [--global] [--force] [--backup]",
		Description: `Install the pb-init, pb-plan, pb-refine and pb-build skills for one or
   every supported AI coding tool.

   Platforms: ` + strings.Join(platform.Choices(), ", ") + `

   Existing files are skipped unless --force is given.

   Examples:
     pb-spec init --ai claude
     pb-spec init --ai all --force
     pb-spec init --ai gemini --global`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ai",
				Usage: "Target platform: " + strings.Join(platform.Choices(), ", "),
			},
			&cli.BoolFlag{
				Name:    "global",
				Aliases: []string{"g"},
				Usage:   "Install into each tool's user-level config directory",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite existing files",
			},
			&cli.BoolFlag{
				Name:  "backup",
				Usage: "Back up files before --force overwrites them",
			},
		},
		Action: runInit,
	}
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	cfg := configFrom(ctx)
	out := stdout(cmd)

	selector, err := resolveSelector(cmd.String("ai"), cfg.Init.AI)
	if err != nil {
		return err
	}
	if _, err := platform.ResolveTargets(selector); err != nil {
		return err
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	store, err := templateStore(cfg, baseDir)
	if err != nil {
		return err
	}

	opts := install.Options{
		Selector: selector,
		BaseDir:  baseDir,
		Global:   cmd.Bool("global") || cfg.Init.Global,
		Force:    cmd.Bool("force"),
		Out:      out,
		Progress: stderr(cmd),
	}
	if opts.Force && (cmd.Bool("backup") || cfg.Backup.Enabled) {
		opts.Backups = backup.New(cfg.BackupDir())
	}

	logging.Debug("starting init",
		logging.Operation("init"),
		logging.Platform(selector),
	)
	reports, err := install.Run(ctx, store, opts)
	if err != nil {
		return err
	}

	backedUp := 0
	for _, r := range reports {
		backedUp += len(r.Backups)
	}
	if backedUp > 0 {
		fmt.Fprintf(out, "%s\n", ui.Dim(fmt.Sprintf("Backed up %d file(s) to %s", backedUp, opts.Backups.Root())))
	}
	fmt.Fprintln(out, ui.StatusSuccess("pb-spec skills installed successfully!"))
	return nil
}

// resolveSelector picks the platform selector from the flag, then the
// configured default, then the interactive picker.
func resolveSelector(flag, configured string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if configured != "" {
		return configured, nil
	}
	if !isInteractive() {
		return "", fmt.Errorf("missing --ai: choose from %s", strings.Join(platform.Choices(), ", "))
	}
	return pickPlatform()
}

func platformChoices() []tui.PlatformChoice {
	var choices []tui.PlatformChoice
	for _, name := range platform.Names() {
		choices = append(choices, tui.PlatformChoice{Value: name, Label: model.Platform(name).DisplayName()})
	}
	return append(choices, tui.PlatformChoice{Value: platform.SelectorAll, Label: "Every supported platform"})
}
