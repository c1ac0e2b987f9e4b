package locks

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "locks",
		Usage: "List the locks held on the dataset",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:  "type",
				Usage: "Narrow the listing to one lock type (e.g. Ingest, InReview, Workflow)",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.GetLocks(c.Context, c.String("type"))
			if err != nil {
				return fmt.Errorf("failed to get locks: %w", err)
			}

			var env api.Envelope
			if err := json.Unmarshal([]byte(body), &env); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}

			var datasetLocks []api.Lock
			if err := json.Unmarshal(env.Data, &datasetLocks); err != nil {
				return fmt.Errorf("failed to decode locks: %w", err)
			}

			if len(datasetLocks) == 0 {
				fmt.Println("No locks found")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Type", "Date", "User", "Message"})
			for _, l := range datasetLocks {
				t.AppendRow(table.Row{l.LockType, l.Date, l.User, l.Message})
			}
			t.Render()

			return nil
		},
	}
}
