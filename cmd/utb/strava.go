package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/underthebar/internal/config"
	"github.com/2beens/underthebar/internal/strava"

	"github.com/urfave/cli/v3"
)

var stravaCommand = &cli.Command{
	Name:  "strava",
	Usage: "Import strava activities into hevy",
	Commands: []*cli.Command{
		{
			Name:   "activities",
			Usage:  "List the recent activities matching the activity type filters",
			Action: withApp(stravaActivitiesAction),
		},
		{
			Name:      "import",
			Usage:     "Import a strava activity into hevy as a workout",
			ArgsUsage: "<activity id>",
			Action:    withApp(stravaImportAction),
		},
		{
			Name:   "sync",
			Usage:  "Import the most recent activity of any known type",
			Action: withApp(stravaSyncAction),
		},
		{
			Name:  "filters",
			Usage: "Show or set the enabled activity types",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "set",
					Usage: "enabled activity types, e.g. --set Run,Hike",
				},
				&cli.BoolFlag{
					Name:  "none",
					Usage: "disable all activity types",
				},
			},
			Action: withApp(stravaFiltersAction),
		},
		{
			Name:  "credentials",
			Usage: "Manage the strava API client credentials",
			Commands: []*cli.Command{
				{
					Name:  "set",
					Usage: "Save the client id and secret to the .env file",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "client-id", Required: true},
						&cli.StringFlag{Name: "client-secret", Required: true},
					},
					Action: withApp(stravaCredentialsSetAction),
				},
				{
					Name:  "test",
					Usage: "Check the client id and secret against strava",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "client-id", Usage: "defaults to the saved one"},
						&cli.StringFlag{Name: "client-secret", Usage: "defaults to the saved one"},
					},
					Action: withApp(stravaCredentialsTestAction),
				},
			},
		},
	},
}

func stravaActivitiesAction(ctx context.Context, _ *cli.Command, a *app) error {
	enabled, err := a.enabledTypes()
	if err != nil {
		return err
	}

	activities, err := a.importer.FetchRecent(ctx, enabled)
	if err != nil {
		return exitWithStatus(err)
	}
	if len(activities) == 0 {
		fmt.Println("No matching activities found")
		return nil
	}

	for _, activity := range activities {
		fmt.Printf("%d\t[%s] %s\n", activity.ID, activity.TypeTitle, activity.Label())
	}
	return nil
}

func stravaImportAction(ctx context.Context, cmd *cli.Command, a *app) error {
	idArg := cmd.Args().First()
	if idArg == "" {
		return cli.Exit("activity id missing, see: utb strava activities", 1)
	}
	activityID, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid activity id [%s]", idArg), 1)
	}

	enabled, err := a.enabledTypes()
	if err != nil {
		return err
	}

	result, err := a.importer.Import(ctx, activityID, enabled)
	if err != nil {
		return exitWithStatus(err)
	}

	action := "created"
	if result.Updated {
		action = "updated"
	}
	fmt.Printf("completed: workout %s %s (%s)\n", result.WorkoutID, action, result.Title)
	return nil
}

func stravaSyncAction(ctx context.Context, _ *cli.Command, a *app) error {
	result, err := a.importer.Sync(ctx)
	if err != nil {
		return exitWithStatus(err)
	}
	if result == nil {
		fmt.Println("No matching activities found")
		return nil
	}
	fmt.Printf("completed: activity %d imported as workout %s\n", result.ActivityID, result.WorkoutID)
	return nil
}

func stravaFiltersAction(_ context.Context, cmd *cli.Command, a *app) error {
	switch {
	case cmd.Bool("none"):
		if err := a.store.SetActivityTypeFilters([]string{}); err != nil {
			return err
		}
	case cmd.IsSet("set"):
		var types []string
		for _, value := range cmd.StringSlice("set") {
			for _, t := range strings.Split(value, ",") {
				t = strings.TrimSpace(t)
				if t == "" {
					continue
				}
				if !strava.KnownType(t) {
					return cli.Exit(fmt.Sprintf("unknown activity type [%s], known: %s", t, strings.Join(strava.AllTypeNames(), ", ")), 1)
				}
				types = append(types, t)
			}
		}
		if err := a.store.SetActivityTypeFilters(types); err != nil {
			return err
		}
	}

	enabled, err := a.enabledTypes()
	if err != nil {
		return err
	}
	enabledSet := make(map[string]bool, len(enabled))
	for _, t := range enabled {
		enabledSet[t] = true
	}

	for _, at := range strava.AllActivityTypes() {
		mark := " "
		if enabled == nil || enabledSet[at.Type] {
			mark = "x"
		}
		fmt.Printf("[%s] %s\n", mark, at.Title)
	}
	return nil
}

func stravaCredentialsSetAction(_ context.Context, cmd *cli.Command, a *app) error {
	creds := config.StravaCredentials{
		ClientID:     strings.TrimSpace(cmd.String("client-id")),
		ClientSecret: strings.TrimSpace(cmd.String("client-secret")),
	}
	if err := config.SaveStravaCredentials(a.cfg.EnvFilePath(), creds); err != nil {
		return err
	}
	a.tokens.Reset()
	fmt.Println("Saved")
	return nil
}

func stravaCredentialsTestAction(ctx context.Context, cmd *cli.Command, a *app) error {
	creds := config.StravaCredentialsFromEnv()
	if cmd.IsSet("client-id") {
		creds.ClientID = strings.TrimSpace(cmd.String("client-id"))
	}
	if cmd.IsSet("client-secret") {
		creds.ClientSecret = strings.TrimSpace(cmd.String("client-secret"))
	}

	ok, message := strava.CheckCredentials(ctx, a.httpClient, a.cfg.StravaTokenURL, creds)
	if !ok {
		return cli.Exit(message, 1)
	}
	fmt.Println(message)
	return nil
}
