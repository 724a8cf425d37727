package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/2beens/underthebar/internal/config"
	"github.com/2beens/underthebar/internal/hevy"
	"github.com/2beens/underthebar/internal/importer"
	"github.com/2beens/underthebar/internal/logging"
	"github.com/2beens/underthebar/internal/repmax"
	"github.com/2beens/underthebar/internal/session"
	"github.com/2beens/underthebar/internal/strava"
	"github.com/2beens/underthebar/internal/telemetry/metrics"
	"github.com/2beens/underthebar/internal/telemetry/tracing"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const httpClientTimeout = time.Minute

// app holds the wired components shared by all commands.
type app struct {
	cfg        *config.Config
	store      *session.Store
	httpClient *http.Client

	tokens   *strava.TokenManager
	strava   *strava.Client
	hevy     *hevy.Client
	login    *hevy.SessionLogin
	importer *importer.Importer
	repMax   *repmax.Analyzer

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

func newApp(cmd *cli.Command) (*app, error) {
	cfg, err := config.Load(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "underthebar",
	})
	log.Debugf("---->> running in [%s] environment, data dir: [%s]", cfg.Environment, cfg.DataDir)

	if err := config.LoadEnvFile(cfg.EnvFilePath()); err != nil {
		return nil, err
	}

	otelShutdown, err := tracing.HoneycombSetup(cfg.HoneycombEnabled, "underthebar")
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("utb", "main", promRegistry)

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   httpClientTimeout,
	}

	store := session.NewStore(cfg.SessionFilePath())
	tokens := strava.NewTokenManager(strava.TokenManagerParams{
		Store:        store,
		AuthURL:      cfg.StravaAuthURL,
		TokenURL:     cfg.StravaTokenURL,
		RedirectURL:  cfg.StravaRedirectURL,
		CallbackAddr: cfg.StravaCallbackAddr,
		HTTPClient:   tracedHttpClient,
	})
	stravaClient := strava.NewClient(cfg.StravaAPIURL, tokens, tracedHttpClient, metricsManager)
	hevyClient := hevy.NewClient(cfg.HevyAPIURL, tracedHttpClient, metricsManager)
	login := hevy.NewSessionLogin(store, cfg.DataDir)

	userFolder := func() (string, error) {
		loggedIn, folder, _ := login.IsLoggedIn()
		if !loggedIn {
			return "", importer.ErrNotLoggedIn
		}
		return folder, nil
	}

	return &app{
		cfg:        cfg,
		store:      store,
		httpClient: tracedHttpClient,
		tokens:     tokens,
		strava:     stravaClient,
		hevy:       hevyClient,
		login:      login,
		importer: importer.New(importer.Params{
			Strava:          stravaClient,
			Hevy:            hevyClient,
			Login:           login,
			Session:         store,
			PrivateImports:  cfg.ImportsPrivate(),
			ActivitiesLimit: cfg.StravaActivitiesLimit,
			MetricsManager:  metricsManager,
		}),
		repMax:         repmax.NewAnalyzer(repmax.NewFolderReader(userFolder)),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (a *app) close() {
	a.otelShutdown()
	if a.cfg.SentryEnabled {
		sentry.Flush(5 * time.Second)
	}
}

// enabledTypes returns the saved activity type filters; nil when never saved.
func (a *app) enabledTypes() ([]string, error) {
	filters, found, err := a.store.ActivityTypeFilters()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return filters, nil
}

// withApp wires the components before running the action and releases them after.
func withApp(action func(ctx context.Context, cmd *cli.Command, a *app) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return action(ctx, cmd, a)
	}
}

// exitWithStatus reports a failed operation the same way the settings page does.
func exitWithStatus(err error) error {
	status := importer.StatusCode(err)
	return cli.Exit(fmt.Sprintf("%s: %s", importer.StatusLabel(status), err), 1)
}
