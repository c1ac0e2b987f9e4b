// Package flags holds the connection and addressing flags the commands share.
// The connection flags live on the app; the client built from them is placed
// in the context by the app's Before hook and picked up by NewDataset.
package flags

import (
	"fmt"

	"github.com/dvtools/dataverse/client"
	"github.com/urfave/cli/v2"
)

func Server() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "server-url",
			Required: true,
			Usage:    "Base URL of the Dataverse installation",
			EnvVars:  []string{"DATAVERSE_SERVER_URL"},
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token",
			EnvVars: []string{"DATAVERSE_API_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "api-version",
			Value:   client.DefaultAPIVersion,
			Usage:   "Native API version",
			EnvVars: []string{"DATAVERSE_API_VERSION"},
		},
	}
}

func Dataset() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "id",
			Usage:   "Database id of the dataset",
			EnvVars: []string{"DATAVERSE_DATASET_ID"},
		},
		&cli.StringFlag{
			Name:    "pid",
			Usage:   "Persistent identifier of the dataset (e.g. doi:10.5072/FK2/ABC123)",
			EnvVars: []string{"DATAVERSE_DATASET_PID"},
		},
	}
}

// NewDataset takes the client the Before hook put in the context and returns
// the dataset handle addressed by the --id or --pid flag.
func NewDataset(c *cli.Context) (*client.Dataset, error) {
	cl := client.MustClientFromContext(c.Context)

	if pid := c.String("pid"); pid != "" {
		return cl.DatasetByPersistentID(pid), nil
	}

	if id := c.String("id"); id != "" {
		return cl.Dataset(id), nil
	}

	return nil, fmt.Errorf("either --id or --pid is required")
}
