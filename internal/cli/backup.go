package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/klauern/pbspec/internal/backup"
	"github.com/klauern/pbspec/internal/logging"
	"github.com/klauern/pbspec/internal/platform"
	"github.com/klauern/pbspec/internal/ui"
	"github.com/klauern/pbspec/internal/util"
)

func backupCommand() *cli.Command {
	return &cli.Command{
		Name:  "backup",
		Usage: "List and restore files saved by init --force --backup",
		Commands: []*cli.Command{
			backupListCommand(),
			backupRestoreCommand(),
		},
	}
}

func backupListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List backups, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ai",
				Value: platform.SelectorAll,
				Usage: "Only list backups for this platform: " + strings.Join(platform.Choices(), ", "),
			},
		},
		Action: runBackupList,
	}
}

func backupRestoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "Write a backup back to the file it was taken from",
		ArgsUsage: "<id>",
		Action:    runBackupRestore,
	}
}

func runBackupList(ctx context.Context, cmd *cli.Command) error {
	filter := cmd.String("ai")
	if filter == platform.SelectorAll {
		filter = ""
	} else if _, err := platform.ResolveTargets(filter); err != nil {
		return err
	}

	store := backup.New(configFrom(ctx).BackupDir())
	backups, err := store.List(filter)
	if err != nil {
		return err
	}

	baseDir, _ := os.Getwd()
	out := stdout(cmd)
	if len(backups) == 0 {
		fmt.Fprintf(out, "No backups in %s\n", store.Root())
		return nil
	}
	for _, b := range backups {
		fmt.Fprintf(out, "%s  %-8s  %s  %s\n",
			b.ID,
			b.Platform,
			b.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			util.DisplayPath(b.SourcePath, baseDir),
		)
	}
	fmt.Fprintln(out, ui.Dim(fmt.Sprintf("%d backup(s) in %s", len(backups), store.Root())))
	return nil
}

func runBackupRestore(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return errors.New("missing backup id: run 'pb-spec backup list' to find one")
	}

	store := backup.New(configFrom(ctx).BackupDir())
	meta, err := store.Restore(id)
	if err != nil {
		logging.FromContext(ctx).Debug("restore failed",
			logging.Operation("backup restore"),
			logging.Err(err),
		)
		return err
	}

	baseDir, _ := os.Getwd()
	fmt.Fprintln(stdout(cmd), ui.StatusSuccess(fmt.Sprintf("Restored %s from backup %s", util.DisplayPath(meta.SourcePath, baseDir), id)))
	return nil
}
