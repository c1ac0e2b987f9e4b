package dataset

import (
	"fmt"
	"log/slog"

	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func metadataCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "metadata",
		Usage: "Dataset metadata commands",
		Subcommands: []*cli.Command{
			metadataBlocksCommand(),
			metadataUpdateCommand(log),
			metadataEditCommand(),
			metadataDeleteCommand(),
			citationDateCommand(),
		},
	}
}

func metadataBlocksCommand() *cli.Command {
	return &cli.Command{
		Name:  "blocks",
		Usage: "List the metadata blocks of the dataset",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:  "version",
				Usage: "Version to read from",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Show a single metadata block",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.ListMetadataBlocks(c.Context, c.String("version"), c.String("name"))
			if err != nil {
				return fmt.Errorf("failed to list metadata blocks: %w", err)
			}

			fmt.Println(body)
			return nil
		},
	}
}

func metadataUpdateCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Replace the dataset version metadata from a JSON file",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Dataset version JSON file",
			},
			&cli.StringFlag{
				Name:  "version",
				Usage: "Version to update",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.UpdateMetadataFromFile(c.Context, c.String("file"), c.String("version"))
			if err != nil {
				return fmt.Errorf("failed to update metadata: %w", err)
			}

			log.Info("metadata updated", "dataset", ds.ID())
			fmt.Println(body)
			return nil
		},
	}
}

func metadataEditCommand() *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "Add metadata fields from a JSON file to the draft version",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Metadata fields JSON file",
			},
			&cli.BoolFlag{
				Name:  "replace",
				Usage: "Overwrite existing field values",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.EditMetadataFromFile(c.Context, c.String("file"), c.Bool("replace"))
			if err != nil {
				return fmt.Errorf("failed to edit metadata: %w", err)
			}

			fmt.Println(body)
			return nil
		},
	}
}

func metadataDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete the metadata field values named in a JSON file",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Metadata fields JSON file",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.DeleteMetadataFromFile(c.Context, c.String("file"))
			if err != nil {
				return fmt.Errorf("failed to delete metadata: %w", err)
			}

			fmt.Println(body)
			return nil
		},
	}
}

func citationDateCommand() *cli.Command {
	return &cli.Command{
		Name:  "citation-date",
		Usage: "Citation date field commands",
		Subcommands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Select the metadata field shown as the citation date",
				Flags: append(flags.Dataset(),
					&cli.StringFlag{
						Name:     "field",
						Required: true,
						Usage:    "Field name (e.g. dateOfDeposit or :publicationDate)",
					},
				),
				Action: func(c *cli.Context) error {
					ds, err := flags.NewDataset(c)
					if err != nil {
						return err
					}

					body, err := ds.SetCitationDateField(c.Context, c.String("field"))
					if err != nil {
						return fmt.Errorf("failed to set citation date field: %w", err)
					}

					fmt.Println(body)
					return nil
				},
			},
			{
				Name:  "revert",
				Usage: "Restore the default citation date",
				Flags: flags.Dataset(),
				Action: func(c *cli.Context) error {
					ds, err := flags.NewDataset(c)
					if err != nil {
						return err
					}

					body, err := ds.RevertCitationDateField(c.Context)
					if err != nil {
						return fmt.Errorf("failed to revert citation date field: %w", err)
					}

					fmt.Println(body)
					return nil
				},
			},
		},
	}
}
