package dataset

import (
	"fmt"

	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func linkCommand() *cli.Command {
	return &cli.Command{
		Name:  "link",
		Usage: "Link the dataset into another dataverse collection",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "target",
				Required: true,
				Usage:    "Alias of the target dataverse collection",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.Link(c.Context, c.String("target"))
			if err != nil {
				return fmt.Errorf("failed to link dataset: %w", err)
			}

			fmt.Println(body)
			return nil
		},
	}
}
