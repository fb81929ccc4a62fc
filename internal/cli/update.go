package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klauern/pbspec/internal/ui"
	"github.com/klauern/pbspec/internal/update"
)

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update pb-spec to the latest version",
		Description: `Runs the configured update command, by default:

     ` + "go install github.com/klauern/pbspec/cmd/pb-spec@latest" + `

   Set update.command in the config file or PBSPEC_UPDATE_COMMAND to change it.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			err := update.Run(ctx, update.Options{
				Command: cfg.UpdateArgs(),
				Stdout:  stdout(cmd),
				Stderr:  stderr(cmd),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout(cmd), ui.StatusSuccess("pb-spec updated successfully."))
			return nil
		},
	}
}
