package dataset

import (
	"fmt"
	"log/slog"

	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func publishCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "publish",
		Usage: "Publish the draft version",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:  "type",
				Value: api.PublishMajor,
				Usage: "Update type (major, minor or updatecurrent)",
			},
		),
		Action: func(c *cli.Context) error {
			updateType := c.String("type")
			if err := api.ValidatePublishType(updateType); err != nil {
				return err
			}

			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.Publish(c.Context, updateType)
			if err != nil {
				return fmt.Errorf("failed to publish dataset: %w", err)
			}

			log.Info("dataset published", "dataset", ds.ID(), "type", updateType)
			fmt.Println(body)
			return nil
		},
	}
}
