package files

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func addCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Upload a file into the draft version",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "File to upload",
				EnvVars:  []string{"DATAVERSE_FILE"},
			},
			&cli.StringFlag{
				Name:  "metadata",
				Usage: "File metadata as a JSON literal",
			},
			&cli.StringFlag{
				Name:  "metadata-file",
				Usage: "File metadata as a JSON file",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			jsonData := []byte(c.String("metadata"))
			if path := c.String("metadata-file"); path != "" {
				jsonData, err = os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read metadata file: %w", err)
				}
			}

			filePath := c.String("file")

			body, err := ds.AddFileFromPath(c.Context, filePath, jsonData)
			if err != nil {
				return fmt.Errorf("failed to add file: %w", err)
			}

			log.Info("file added", "dataset", ds.ID(), "file", filePath)
			fmt.Println(body)
			return nil
		},
	}
}
