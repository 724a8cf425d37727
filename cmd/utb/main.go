package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "utb",
		Usage: "under the bar: strava to hevy import, rep maxes and settings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Value: "development",
				Usage: "environment [prod | production | dev | development]",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: "./config.toml",
				Usage: "path for the TOML config file",
			},
		},
		Commands: []*cli.Command{
			stravaCommand,
			hevyCommand,
			repMaxCommand,
			serveCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Errorf("utb: %s", err)
		os.Exit(1)
	}
}
