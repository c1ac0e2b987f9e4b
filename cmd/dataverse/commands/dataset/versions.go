package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func versionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List all versions of the dataset",
		Flags: flags.Dataset(),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.ListVersions(c.Context)
			if err != nil {
				return fmt.Errorf("failed to list versions: %w", err)
			}

			var env api.Envelope
			if err := json.Unmarshal([]byte(body), &env); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}

			var versions []api.DatasetVersion
			if err := json.Unmarshal(env.Data, &versions); err != nil {
				return fmt.Errorf("failed to decode versions: %w", err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Version", "State", "Last Updated"})
			for _, v := range versions {
				t.AppendRow(table.Row{
					fmt.Sprintf("%d.%d", v.VersionNumber, v.VersionMinorNumber),
					v.VersionState,
					v.LastUpdateTime,
				})
			}
			t.Render()

			return nil
		},
	}
}
