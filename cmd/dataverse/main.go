package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dvtools/dataverse/client"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/dataset"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/files"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/locks"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/privateurl"
	"github.com/dvtools/dataverse/cmd/dataverse/commands/roles"
	"github.com/urfave/cli/v2"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &cli.App{
		Name:  "dataverse",
		Usage: "Command line interface for the Dataverse native API",
		Flags: flags.Server(),
		Before: func(c *cli.Context) error {
			cl, err := client.NewClient(c.String("server-url"), client.Options{
				APIToken:   c.String("token"),
				APIVersion: c.String("api-version"),
				Logger:     log,
			})
			if err != nil {
				return fmt.Errorf("could not create client: %w", err)
			}

			c.Context = client.ContextWithClient(c.Context, cl)

			return nil
		},
		Commands: []*cli.Command{
			dataset.Command(log),
			files.Command(log),
			roles.Command(log),
			privateurl.Command(log),
			locks.Command(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error("terminated", "error", err)
		os.Exit(1)
	}
}
