package privateurl

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func Command(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "private-url",
		Usage: "Dataset private URL commands",
		Subcommands: []*cli.Command{
			createCommand(),
			getCommand(),
			deleteCommand(log),
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a private URL for the draft version",
		Flags: flags.Dataset(),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.CreatePrivateURL(c.Context)
			if err != nil {
				return fmt.Errorf("failed to create private URL: %w", err)
			}

			printLink(body)
			return nil
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Show the private URL of the dataset",
		Flags: flags.Dataset(),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.GetPrivateURL(c.Context)
			if err != nil {
				return fmt.Errorf("failed to get private URL: %w", err)
			}

			printLink(body)
			return nil
		},
	}
}

func deleteCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Revoke the private URL of the dataset",
		Flags: flags.Dataset(),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			_, err = ds.DeletePrivateURL(c.Context)
			if err != nil {
				return fmt.Errorf("failed to delete private URL: %w", err)
			}

			log.Info("private URL deleted", "dataset", ds.ID())
			return nil
		},
	}
}

// printLink prints the link from the response when it decodes, the raw body otherwise.
func printLink(body string) {
	var env api.Envelope
	if err := json.Unmarshal([]byte(body), &env); err == nil {
		var pu api.PrivateURL
		if err := json.Unmarshal(env.Data, &pu); err == nil && pu.Link != "" {
			fmt.Println(pu.Link)
			return
		}
	}
	fmt.Println(body)
}
