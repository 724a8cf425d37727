package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/underthebar/internal/repmax"

	"github.com/urfave/cli/v3"
)

var repMaxCommand = &cli.Command{
	Name:  "repmax",
	Usage: "Rep max history of the cached hevy workouts",
	Commands: []*cli.Command{
		{
			Name:   "list",
			Usage:  "List the weight and reps exercises",
			Action: withApp(repMaxListAction),
		},
		{
			Name:      "show",
			Usage:     "Show the rep max history of an exercise",
			ArgsUsage: "<exercise title>",
			Action:    withApp(repMaxShowAction),
		},
	},
}

func repMaxListAction(ctx context.Context, _ *cli.Command, a *app) error {
	exercises, err := a.repMax.Exercises(ctx)
	if err != nil {
		return exitWithStatus(err)
	}
	for _, e := range exercises {
		fmt.Printf("%s\t%s\n", e.TemplateID, e.Title)
	}
	return nil
}

func repMaxShowAction(ctx context.Context, cmd *cli.Command, a *app) error {
	title := strings.Join(cmd.Args().Slice(), " ")
	if title == "" {
		return cli.Exit("exercise title missing, see: utb repmax list", 1)
	}

	history, err := a.repMax.History(ctx, title)
	if err != nil {
		if errors.Is(err, repmax.ErrExerciseNotFound) {
			return cli.Exit(fmt.Sprintf("exercise [%s] not found", title), 1)
		}
		return exitWithStatus(err)
	}

	fmt.Println(history.Exercise)
	for _, series := range history.Series {
		fmt.Printf("\n%d rep max: %.1f kg\n", series.Reps, series.Current())
		for _, p := range series.Points {
			fmt.Printf("  %s\t%.1f kg\n", p.Date.Format("2006-01-02"), p.WeightKg)
		}
	}
	return nil
}
