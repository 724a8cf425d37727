package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/underthebar/internal/config"
	"github.com/2beens/underthebar/internal/importer"
	"github.com/2beens/underthebar/internal/settings"
	"github.com/2beens/underthebar/internal/strava"
	"github.com/2beens/underthebar/internal/tasks"
	"github.com/2beens/underthebar/pkg"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Run the local settings server",
	Action: withApp(serveAction),
	Commands: []*cli.Command{
		{
			Name:      "hash-password",
			Usage:     "Print the bcrypt hash to use as settings_password_hash",
			ArgsUsage: "<password>",
			Action:    hashPasswordAction,
		},
	},
}

func hashPasswordAction(_ context.Context, cmd *cli.Command) error {
	password := cmd.Args().First()
	if password == "" {
		return cli.Exit("password missing", 1)
	}
	hash, err := pkg.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func serveAction(ctx context.Context, _ *cli.Command, a *app) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := tasks.NewHub()
	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		hub.Run(ctx)
	}()

	dispatcher := tasks.NewDispatcher(tasks.DispatcherParams{
		MaxConcurrent:  tasks.DefaultMaxConcurrent,
		StatusCode:     importer.StatusCode,
		Label:          settings.TaskLabel,
		MetricsManager: a.metricsManager,
	})
	dispatcher.OnDone(hub.Broadcast)
	dispatcher.OnDone(func(result tasks.Result) {
		log.Infof("task %s [%s] finished: %s", result.ID, result.Kind, result.Label)
	})

	handler := settings.NewHandler(settings.HandlerParams{
		Filters:            a.store,
		Importer:           a.importer,
		Dispatcher:         dispatcher,
		RepMax:             a.repMax,
		Login:              a.login,
		TaskEvents:         hub.ServeWS,
		Environment:        a.cfg.Environment,
		EnvFilePath:        a.cfg.EnvFilePath(),
		CredentialsChanged: a.tokens.Reset,
		CheckCredentials: func(ctx context.Context, creds config.StravaCredentials) (bool, string) {
			return strava.CheckCredentials(ctx, a.httpClient, a.cfg.StravaTokenURL, creds)
		},
	})

	server := settings.NewServer(settings.NewServerParams{
		Handler:        handler,
		Host:           a.cfg.SettingsHost,
		Port:           a.cfg.SettingsPort,
		PasswordHash:   a.cfg.SettingsPasswordHash,
		MetricsManager: a.metricsManager,
		PromGatherer:   a.promRegistry,
	})
	if err := server.Serve(); err != nil {
		return err
	}
	if !a.cfg.IsProduction() {
		log.Warnln(settings.DevModeWarning)
	}

	<-ctx.Done()
	log.Warnln("signal received, shutting down ...")

	server.GracefulShutdown(context.Background())
	dispatcher.Close()
	<-hubDone
	return nil
}
