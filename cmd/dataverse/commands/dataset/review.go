package dataset

import (
	"fmt"

	"github.com/dvtools/dataverse/cmd/dataverse/commands/flags"
	"github.com/urfave/cli/v2"
)

func submitForReviewCommand() *cli.Command {
	return &cli.Command{
		Name:  "submit-for-review",
		Usage: "Submit the draft version for review",
		Flags: flags.Dataset(),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.SubmitForReview(c.Context)
			if err != nil {
				return fmt.Errorf("failed to submit for review: %w", err)
			}

			fmt.Println(body)
			return nil
		},
	}
}

func returnToAuthorCommand() *cli.Command {
	return &cli.Command{
		Name:  "return-to-author",
		Usage: "Return a dataset in review to its author",
		Flags: append(flags.Dataset(),
			&cli.StringFlag{
				Name:     "reason",
				Required: true,
				Usage:    "Reason for returning the dataset",
			},
		),
		Action: func(c *cli.Context) error {
			ds, err := flags.NewDataset(c)
			if err != nil {
				return err
			}

			body, err := ds.ReturnToAuthor(c.Context, c.String("reason"))
			if err != nil {
				return fmt.Errorf("failed to return to author: %w", err)
			}

			fmt.Println(body)
			return nil
		},
	}
}
