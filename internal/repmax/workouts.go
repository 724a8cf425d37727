package repmax

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/2beens/underthebar/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const ExerciseTypeWeightReps = "weight_reps"

var workoutFileRegex = regexp.MustCompile(`^workout_(\d{4}-\d{2}-\d{2})_(.+)\.json$`)

// Workout is a hevy workout as cached in the user folder.
type Workout struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime int64      `json:"start_time"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	Title              string `json:"title"`
	ExerciseTemplateID string `json:"exercise_template_id"`
	ExerciseType       string `json:"exercise_type"`
	Sets               []Set  `json:"sets"`
}

// Set values are nil for sets logged without weight or reps.
type Set struct {
	WeightKg *float64 `json:"weight_kg"`
	Reps     *int     `json:"reps"`
}

func (s Set) Weight() float64 {
	if s.WeightKg == nil {
		return 0
	}
	return *s.WeightKg
}

func (s Set) RepCount() int {
	if s.Reps == nil {
		return 0
	}
	return *s.Reps
}

// FolderReader reads the workouts cached under <user folder>/workouts.
type FolderReader struct {
	userFolder func() (string, error)
}

// NewFolderReader takes the user folder lazily, since the logged in user may change.
func NewFolderReader(userFolder func() (string, error)) *FolderReader {
	return &FolderReader{userFolder: userFolder}
}

// ListWorkouts returns every cached workout, newest file first.
func (r *FolderReader) ListWorkouts(ctx context.Context) (workouts []Workout, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repmax.folderReader.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userFolder, err := r.userFolder()
	if err != nil {
		return nil, err
	}
	workoutsFolder := filepath.Join(userFolder, "workouts")

	entries, err := os.ReadDir(workoutsFolder)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Workout{}, nil
		}
		return nil, fmt.Errorf("read workouts folder: %w", err)
	}

	var fileNames []string
	for _, entry := range entries {
		if entry.IsDir() || !workoutFileRegex.MatchString(entry.Name()) {
			continue
		}
		fileNames = append(fileNames, entry.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(fileNames)))

	log.Debugf("repmax: %d workout files to process", len(fileNames))
	span.SetAttributes(attribute.Int("files", len(fileNames)))

	workouts = make([]Workout, 0, len(fileNames))
	for _, fileName := range fileNames {
		content, err := os.ReadFile(filepath.Join(workoutsFolder, fileName))
		if err != nil {
			return nil, fmt.Errorf("read workout file %s: %w", fileName, err)
		}
		var workout Workout
		if err := json.Unmarshal(content, &workout); err != nil {
			return nil, fmt.Errorf("unmarshal workout file %s: %w", fileName, err)
		}
		workouts = append(workouts, workout)
	}

	return workouts, nil
}
