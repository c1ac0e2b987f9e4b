package dataset

import (
	"fmt"

	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func viewCommand() *cli.Command {
	return &cli.Command{
		Name:  "view",
		Usage: "Show the dataset, or one of its versions",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:  "version",
				Usage: "Version to show (e.g. 1.0, :latest, :draft)",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.View(c.Context, c.String("version"))
			if err != nil {
				return fmt.Errorf("failed to view dataset: %w", err)
			}

			fmt.Println(body)
			return nil
		},
	}
}
