package dataset

import (
	"log/slog"

	"github.com/urfave/cli/v2"
)

func Command(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "dataset",
		Usage: "Dataset management commands",
		Subcommands: []*cli.Command{
			viewCommand(),
			deleteCommand(log),
			versionsCommand(),
			deleteDraftCommand(log),
			publishCommand(log),
			submitForReviewCommand(),
			returnToAuthorCommand(),
			linkCommand(),
			exportCommand(),
			metadataCommand(log),
		},
	}
}
