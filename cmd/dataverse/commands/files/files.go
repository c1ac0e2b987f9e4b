package files

import (
	"log/slog"

	"github.com/urfave/cli/v2"
)

func Command(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "files",
		Usage: "Dataset file commands",
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(log),
			uploadDirectCommand(log),
		},
	}
}
