// Package repmax computes rep-max records from the locally cached hevy workouts.
package repmax

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/2beens/underthebar/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=repmax_test

type workoutsSource interface {
	ListWorkouts(ctx context.Context) ([]Workout, error)
}

var ErrExerciseNotFound = errors.New("exercise not found in any workout")

// RepCounts are the tracked rep maxes: heaviest weight lifted for at least that many reps.
var RepCounts = []int{1, 3, 5, 10}

type ExerciseOption struct {
	Title      string `json:"title"`
	TemplateID string `json:"template_id"`
}

type Point struct {
	StartTime int64     `json:"start_time"`
	Date      time.Time `json:"date"`
	WeightKg  float64   `json:"weight_kg"`
}

// Series holds the points where a rep max was raised, in chronological order.
type Series struct {
	Reps   int     `json:"reps"`
	Points []Point `json:"points"`
}

func (s Series) Current() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].WeightKg
}

type History struct {
	Exercise string   `json:"exercise"`
	Series   []Series `json:"series"`
	// OneRepMaxPerWorkout is the best single rep weight of every workout.
	OneRepMaxPerWorkout []Point `json:"one_rep_max_per_workout"`
}

type Analyzer struct {
	source workoutsSource
}

func NewAnalyzer(source workoutsSource) *Analyzer {
	return &Analyzer{
		source: source,
	}
}

// Exercises lists every weight_reps exercise ever done, sorted by title.
func (a *Analyzer) Exercises(ctx context.Context) (_ []ExerciseOption, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.repmax.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := a.source.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	title2template := make(map[string]string)
	for _, workout := range workouts {
		for _, ex := range workout.Exercises {
			if ex.ExerciseType == ExerciseTypeWeightReps {
				title2template[ex.Title] = ex.ExerciseTemplateID
			}
		}
	}

	options := make([]ExerciseOption, 0, len(title2template))
	for title, templateID := range title2template {
		options = append(options, ExerciseOption{Title: title, TemplateID: templateID})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Title < options[j].Title
	})

	return options, nil
}

// History walks the workouts with the given exercise in chronological order and
// records a point whenever a rep max goes up. The first workout always counts.
func (a *Analyzer) History(ctx context.Context, exerciseTitle string) (_ *History, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.repmax.history")
	span.SetAttributes(attribute.String("exercise", exerciseTitle))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := a.source.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	// per workout start time, the heaviest weight for each rep count
	start2maxes := make(map[int64][]float64)
	for _, workout := range workouts {
		found := false
		maxes := start2maxes[workout.StartTime]
		if maxes == nil {
			maxes = make([]float64, len(RepCounts))
		}
		for _, ex := range workout.Exercises {
			if ex.Title != exerciseTitle {
				continue
			}
			found = true
			for _, set := range ex.Sets {
				weight, reps := set.Weight(), set.RepCount()
				for i, repCount := range RepCounts {
					if reps >= repCount && weight > maxes[i] {
						maxes[i] = weight
					}
				}
			}
		}
		if found {
			start2maxes[workout.StartTime] = maxes
		}
	}

	if len(start2maxes) == 0 {
		return nil, ErrExerciseNotFound
	}

	startTimes := make([]int64, 0, len(start2maxes))
	for startTime := range start2maxes {
		startTimes = append(startTimes, startTime)
	}
	sort.Slice(startTimes, func(i, j int) bool { return startTimes[i] < startTimes[j] })

	history := &History{
		Exercise:            exerciseTitle,
		Series:              make([]Series, len(RepCounts)),
		OneRepMaxPerWorkout: make([]Point, 0, len(startTimes)),
	}
	for i, repCount := range RepCounts {
		history.Series[i] = Series{Reps: repCount, Points: []Point{}}
	}

	for _, startTime := range startTimes {
		maxes := start2maxes[startTime]
		for i := range RepCounts {
			series := &history.Series[i]
			if len(series.Points) == 0 || maxes[i] > series.Current() {
				series.Points = append(series.Points, newPoint(startTime, maxes[i]))
			}
		}
		history.OneRepMaxPerWorkout = append(history.OneRepMaxPerWorkout, newPoint(startTime, maxes[0]))
	}

	return history, nil
}

func newPoint(startTime int64, weight float64) Point {
	return Point{
		StartTime: startTime,
		Date:      time.Unix(startTime, 0).UTC().Truncate(24 * time.Hour),
		WeightKg:  weight,
	}
}
