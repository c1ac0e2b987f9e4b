package roles

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func Command(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "roles",
		Usage: "Dataset role assignment commands",
		Subcommands: []*cli.Command{
			listCommand(),
			assignCommand(log),
			deleteCommand(log),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the role assignments on the dataset",
		Flags: flags.Dataset(),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.ListRoleAssignments(c.Context)
			if err != nil {
				return fmt.Errorf("failed to list role assignments: %w", err)
			}

			var env api.Envelope
			if err := json.Unmarshal([]byte(body), &env); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}

			var assignments []api.RoleAssignment
			if err := json.Unmarshal(env.Data, &assignments); err != nil {
				return fmt.Errorf("failed to decode assignments: %w", err)
			}

			if len(assignments) == 0 {
				fmt.Println("No role assignments found")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Assignee", "Role"})
			for _, a := range assignments {
				t.AppendRow(table.Row{a.ID, a.Assignee, a.RoleAlias})
			}
			t.Render()

			return nil
		},
	}
}
