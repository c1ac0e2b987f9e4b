package files

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the files of the dataset",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:  "version",
				Usage: "Version to list (e.g. 1.0, :latest, :draft)",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.ListFiles(c.Context, c.String("version"))
			if err != nil {
				return fmt.Errorf("failed to list files: %w", err)
			}

			var env api.Envelope
			if err := json.Unmarshal([]byte(body), &env); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}

			var entries []api.FileListEntry
			if err := json.Unmarshal(env.Data, &entries); err != nil {
				return fmt.Errorf("failed to decode file listing: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No files found")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Name", "Directory", "Type", "Size", "Restricted"})
			for _, e := range entries {
				t.AppendRow(table.Row{
					e.DataFile.ID,
					e.Label,
					e.DirectoryLabel,
					e.DataFile.ContentType,
					humanize.Bytes(e.DataFile.Filesize),
					e.Restricted,
				})
			}
			t.Render()

			return nil
		},
	}
}
