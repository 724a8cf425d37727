// Package importer moves strava activities into hevy as workouts.
package importer

import (
	"context"

	"github.com/2beens/underthebar/internal/hevy"
	"github.com/2beens/underthebar/internal/strava"
	"github.com/2beens/underthebar/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=importer_test

type stravaAPI interface {
	GetAthlete(ctx context.Context) (*strava.Athlete, error)
	ListActivities(ctx context.Context, limit int) ([]strava.SummaryActivity, error)
	GetActivity(ctx context.Context, id int64) (*strava.DetailedActivity, error)
	GetActivityStreams(ctx context.Context, id int64, keys []string) (strava.StreamSet, error)
}

type hevyAPI interface {
	Account(ctx context.Context, authToken string) (*hevy.Account, error)
	UpsertWorkout(ctx context.Context, authToken string, req *hevy.WorkoutRequest) (hevy.UpsertResult, error)
}

type loginChecker interface {
	IsLoggedIn() (bool, string, string)
}

type sessionReader interface {
	UserID() (string, error)
}

const (
	DefaultActivitiesLimit = 20
	MaxMatchingActivities  = 5
)

type Importer struct {
	strava          stravaAPI
	hevy            hevyAPI
	login           loginChecker
	session         sessionReader
	privateImports  bool
	activitiesLimit int
	metricsManager  *metrics.Manager
}

type Params struct {
	Strava          stravaAPI
	Hevy            hevyAPI
	Login           loginChecker
	Session         sessionReader
	PrivateImports  bool
	ActivitiesLimit int
	MetricsManager  *metrics.Manager
}

func New(params Params) *Importer {
	limit := params.ActivitiesLimit
	if limit <= 0 {
		limit = DefaultActivitiesLimit
	}
	return &Importer{
		strava:          params.Strava,
		hevy:            params.Hevy,
		login:           params.Login,
		session:         params.Session,
		privateImports:  params.PrivateImports,
		activitiesLimit: limit,
		metricsManager:  params.MetricsManager,
	}
}

func (i *Importer) submittableTypes(enabled []string) ([]strava.ActivityType, error) {
	userID, err := i.session.UserID()
	if err != nil {
		return nil, err
	}
	return strava.SubmittableTypes(enabled, userID), nil
}
