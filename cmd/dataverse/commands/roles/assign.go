package roles

import (
	"fmt"
	"log/slog"

	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func assignCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "assign",
		Usage: "Grant a role on the dataset",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "assignee",
				Required: true,
				Usage:    "Assignee identifier (@user or &group)",
			},
			&cli.StringFlag{
				Name:     "role",
				Required: true,
				Usage:    "Role alias (e.g. curator, contributor)",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.AssignRole(c.Context, api.RoleAssignmentRequest{
				Assignee: c.String("assignee"),
				Role:     c.String("role"),
			})
			if err != nil {
				return fmt.Errorf("failed to assign role: %w", err)
			}

			log.Info("role assigned", "dataset", ds.ID(), "assignee", c.String("assignee"), "role", c.String("role"))
			fmt.Println(body)
			return nil
		},
	}
}

func deleteCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Revoke a role assignment",
		Flags: append(flags.Dataset(),
			&cli.Int64Flag{
				Name:     "assignment-id",
				Required: true,
				Usage:    "Id of the role assignment to revoke",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			_, err = ds.DeleteRoleAssignment(c.Context, c.Int64("assignment-id"))
			if err != nil {
				return fmt.Errorf("failed to delete role assignment: %w", err)
			}

			log.Info("role assignment deleted", "dataset", ds.ID(), "assignment-id", c.Int64("assignment-id"))
			return nil
		},
	}
}
