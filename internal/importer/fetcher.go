package importer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/underthebar/internal/strava"
	"github.com/2beens/underthebar/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// FetchedActivity is a recent strava activity that can be imported.
type FetchedActivity struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	TypeTitle  string    `json:"type_title"`
	StartDate  time.Time `json:"start_date"`
	Distance   float64   `json:"distance"`
	MovingTime int64     `json:"moving_time"`
}

// Label is the one line description used in activity pickers.
func (a FetchedActivity) Label() string {
	date := "?"
	if !a.StartDate.IsZero() {
		date = a.StartDate.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%s - %s (%.2f km, %d min)", date, a.Name, a.Distance/1000.0, a.MovingTime/60)
}

// FetchRecent lists the most recent activities of the enabled types, newest
// first and at most MaxMatchingActivities of them. A nil enabled list means all types.
func (i *Importer) FetchRecent(ctx context.Context, enabled []string) (matching []FetchedActivity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "importer.fetchRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		if i.metricsManager != nil {
			i.metricsManager.CounterFetches.WithLabelValues(strconv.Itoa(StatusCode(err))).Inc()
		}
	}()

	log.Debugln("importer: get recent activities")

	athlete, err := i.strava.GetAthlete(ctx)
	if err != nil {
		return nil, fmt.Errorf("get strava athlete: %w", err)
	}
	log.Printf("Hello from Strava, %s", athlete.FirstName)

	submittable, err := i.submittableTypes(enabled)
	if err != nil {
		return nil, err
	}

	activities, err := i.strava.ListActivities(ctx, i.activitiesLimit)
	if err != nil {
		return nil, fmt.Errorf("list strava activities: %w", err)
	}

	matching = []FetchedActivity{}
	for _, activity := range activities {
		log.Debugf("importer: %s %s %s", activity.Type, activity.Name, activity.StartDate)

		matched, ok := strava.MatchType(submittable, activity.Type)
		if ok {
			matching = append(matching, FetchedActivity{
				ID:         activity.ID,
				Name:       activity.Name,
				Type:       matched.Type,
				TypeTitle:  matched.Title,
				StartDate:  activity.StartDate,
				Distance:   activity.Distance,
				MovingTime: activity.MovingTime,
			})
		}
		if len(matching) >= MaxMatchingActivities {
			break
		}
	}

	span.SetAttributes(attribute.Int("matching", len(matching)))
	return matching, nil
}
