package dataset

import (
	"fmt"

	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the published dataset metadata in a given format",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "format",
				Required: true,
				Usage:    "Export format (ddi, oai_ddi, dcterms, oai_dc, schema.org, dataverse_json, ...)",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.ExportMetadata(c.Context, c.String("format"))
			if err != nil {
				return fmt.Errorf("failed to export metadata: %w", err)
			}

			fmt.Println(body)
			return nil
		},
	}
}
