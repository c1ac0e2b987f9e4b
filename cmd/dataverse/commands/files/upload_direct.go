package files

import (
	"fmt"
	"log/slog"

	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/client"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func uploadDirectCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "upload-direct",
		Usage: "Upload a file straight to the dataset's S3 store",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "File to upload",
				EnvVars:  []string{"DATAVERSE_FILE"},
			},
			&cli.StringFlag{
				Name:  "mime-type",
				Usage: "Content type to register the file with",
			},
			&cli.IntFlag{
				Name:  "parallelism",
				Value: 4,
				Usage: "Maximum number of concurrent part uploads",
			},
			&cli.IntFlag{
				Name:  "retries",
				Value: 3,
				Usage: "Maximum number of retry attempts per part",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			opts := &client.UploadOptions{
				MaxParallelism: c.Int("parallelism"),
				MaxRetries:     c.Int("retries"),
			}
			if mt := c.String("mime-type"); mt != "" {
				opts.FileMeta = &api.FileMeta{MimeType: mt}
			}

			filePath := c.String("file")

			body, err := ds.UploadFileDirect(c.Context, filePath, opts)
			if err != nil {
				return fmt.Errorf("failed to upload file: %w", err)
			}

			log.Info("file uploaded", "dataset", ds.ID(), "file", filePath)
			fmt.Println(body)
			return nil
		},
	}
}
