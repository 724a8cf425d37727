package importer

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/underthebar/internal/hevy"
	"github.com/2beens/underthebar/internal/strava"
	"github.com/2beens/underthebar/internal/telemetry/tracing"
	"github.com/2beens/underthebar/internal/workoutid"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const hevyTimeLayout = "2006-01-02T15:04:05Z"

// ImportResult describes a successfully imported activity.
type ImportResult struct {
	ActivityID int64  `json:"activity_id"`
	WorkoutID  string `json:"workout_id"`
	Title      string `json:"title"`
	Updated    bool   `json:"updated"`
	StatusCode int    `json:"status_code"`
}

// Import copies a single strava activity into hevy. Activities of a type not
// enabled fail with ErrNotSubmittable, a missing hevy login with ErrNotLoggedIn.
// Importing the same activity again updates the workout created the first time.
func (i *Importer) Import(ctx context.Context, activityID int64, enabled []string) (result *ImportResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "importer.import")
	span.SetAttributes(attribute.Int64("activity.id", activityID))
	startedAt := time.Now()
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		if i.metricsManager != nil {
			i.metricsManager.CounterImports.WithLabelValues(strconv.Itoa(StatusCode(err))).Inc()
			i.metricsManager.HistImportDuration.Observe(time.Since(startedAt).Seconds())
		}
	}()

	log.Printf("importer: importing activity %d", activityID)

	submittable, err := i.submittableTypes(enabled)
	if err != nil {
		return nil, err
	}

	activity, err := i.strava.GetActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("get strava activity %d: %w", activityID, err)
	}

	matched, ok := strava.MatchType(submittable, activity.Type)
	if !ok {
		log.Warnf("importer: activity %d of type %s is not submittable", activityID, activity.Type)
		return nil, fmt.Errorf("%w: %s", ErrNotSubmittable, activity.Type)
	}

	log.Printf("importer: importing %s %s", activity.Name, activity.StartDate)

	var streams strava.StreamSet
	if activity.AverageHeartrate > 0 {
		streams, err = i.strava.GetActivityStreams(ctx, activity.ID, []string{strava.StreamTime, strava.StreamHeartrate})
		if err != nil {
			return nil, fmt.Errorf("get strava activity %d streams: %w", activityID, err)
		}
	}

	req := BuildWorkout(activity, matched, streams, i.privateImports)

	loggedIn, _, authToken := i.login.IsLoggedIn()
	if !loggedIn {
		return nil, ErrNotLoggedIn
	}

	account, err := i.hevy.Account(ctx, authToken)
	if err != nil {
		return nil, fmt.Errorf("get hevy account: %w", err)
	}
	log.Printf("Hello from Hevy, %s", account.Username)

	upsert, err := i.hevy.UpsertWorkout(ctx, authToken, req)
	if err != nil {
		return nil, fmt.Errorf("submit workout %s: %w", req.Workout.WorkoutID, err)
	}

	log.Printf("importer: activity %d stored as workout %s (updated: %t)", activityID, upsert.WorkoutID, upsert.Updated)
	return &ImportResult{
		ActivityID: activityID,
		WorkoutID:  upsert.WorkoutID,
		Title:      req.Workout.Title,
		Updated:    upsert.Updated,
		StatusCode: upsert.StatusCode,
	}, nil
}

// Sync imports the newest activity of any catalog type. A nil result
// without error means there was nothing to import.
func (i *Importer) Sync(ctx context.Context) (*ImportResult, error) {
	activities, err := i.FetchRecent(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		log.Println("importer: no valid entries to import")
		return nil, nil
	}
	return i.Import(ctx, activities[0].ID, nil)
}

// BuildWorkout fills a fresh hevy workout request with the activity data.
// The workout id is derived from the start time, so it is the same for every
// import of the same activity.
func BuildWorkout(
	activity *strava.DetailedActivity,
	matched strava.ActivityType,
	streams strava.StreamSet,
	private bool,
) *hevy.WorkoutRequest {
	req := hevy.NewWorkoutRequest()
	workout := &req.Workout
	exercise := &workout.Exercises[0]
	set := &exercise.Sets[0]

	start := activity.StartDate.UTC()
	startEpoch := start.Unix()
	completed := start.Add(time.Duration(activity.MovingTime) * time.Second)

	workout.Title = activity.Name
	exercise.Title = matched.Title
	exercise.ExerciseTemplateID = matched.TemplateID

	workout.StartTime = startEpoch
	workout.EndTime = startEpoch + activity.MovingTime
	req.StravaActivityLocalTime = start.Format(hevyTimeLayout)
	set.DurationSeconds = activity.MovingTime
	set.DistanceMeters = int64(math.Trunc(activity.Distance))
	set.CompletedAt = completed.Format(hevyTimeLayout)

	if activity.Description != "" {
		workout.Description = activity.Description + "\n\n" + workout.Description
	}
	if activity.DeviceName != "" {
		workout.Description = workout.Description + "(" + activity.DeviceName + ")"
	}

	if activity.AverageHeartrate > 0 {
		exercise.Notes = "Heartrate Avg: " + formatFloat(activity.AverageHeartrate) +
			"bpm, Max: " + formatFloat(activity.MaxHeartrate) + "bpm."

		if samples, ok := heartRateSamples(startEpoch, streams); ok {
			workout.Biometrics = &hevy.Biometrics{
				TotalCalories:    activity.Calories,
				HeartRateSamples: samples,
			}
		}
	}

	if activity.AverageWatts > 0 {
		exercise.Notes += "\nPower Avg: " + formatFloat(activity.AverageWatts) +
			"W, Max: " + strconv.FormatInt(activity.MaxWatts, 10) + "W."
	}

	workout.IsPrivate = private
	workout.WorkoutID = workoutid.ForStartTime(startEpoch)

	return req
}

// heartRateSamples pairs the time and heartrate streams. Both must be present.
func heartRateSamples(startEpoch int64, streams strava.StreamSet) ([]hevy.HeartRateSample, bool) {
	timeStream, ok := streams.Get(strava.StreamTime)
	if !ok {
		return nil, false
	}
	hrStream, ok := streams.Get(strava.StreamHeartrate)
	if !ok {
		return nil, false
	}

	n := min(len(timeStream.Data), len(hrStream.Data))
	samples := make([]hevy.HeartRateSample, 0, n)
	for idx := 0; idx < n; idx++ {
		samples = append(samples, hevy.HeartRateSample{
			TimestampMs: int64((float64(startEpoch) + timeStream.Data[idx]) * 1000),
			BPM:         int(hrStream.Data[idx]),
		})
	}
	return samples, true
}

// formatFloat prints a float the way the hevy notes always had it: shortest
// form, with a trailing .0 for whole numbers.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
