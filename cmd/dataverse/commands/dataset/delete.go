package dataset

import (
	"fmt"
	"log/slog"

	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func deleteCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete an unpublished dataset",
		Flags: flags.Dataset(),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			_, err = ds.Delete(c.Context)
			if err != nil {
				return fmt.Errorf("failed to delete dataset: %w", err)
			}

			log.Info("dataset deleted", "dataset", ds.ID())
			return nil
		},
	}
}

func deleteDraftCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "delete-draft",
		Usage: "Discard the draft version of the dataset",
		Flags: flags.Dataset(),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			_, err = ds.DeleteDraft(c.Context)
			if err != nil {
				return fmt.Errorf("failed to delete draft: %w", err)
			}

			log.Info("draft deleted", "dataset", ds.ID())
			return nil
		},
	}
}
