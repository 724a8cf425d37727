package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var hevyCommand = &cli.Command{
	Name:  "hevy",
	Usage: "Hevy account",
	Commands: []*cli.Command{
		{
			Name:   "status",
			Usage:  "Show the hevy login state",
			Action: withApp(hevyStatusAction),
		},
	},
}

func hevyStatusAction(ctx context.Context, _ *cli.Command, a *app) error {
	if !a.cfg.IsProduction() {
		fmt.Println("DEV MODE: all imported activities will be set to private")
	}

	loggedIn, userFolder, authToken := a.login.IsLoggedIn()
	if !loggedIn {
		return cli.Exit("not logged in to hevy", 1)
	}

	account, err := a.hevy.Account(ctx, authToken)
	if err != nil {
		return exitWithStatus(err)
	}

	fmt.Printf("logged in as %s (%s)\n", account.Username, account.ID)
	fmt.Printf("local folder: %s\n", userFolder)
	return nil
}
