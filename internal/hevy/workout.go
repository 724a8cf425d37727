package hevy

const (
	ImportDescription = "(Import from Strava)"
	SetTypeNormal     = "normal"
)

// WorkoutRequest is the body of the create and update workout calls.
type WorkoutRequest struct {
	Workout                 Workout `json:"workout"`
	ShareToStrava           bool    `json:"share_to_strava"`
	StravaActivityLocalTime string  `json:"strava_activity_local_time"`
}

type Workout struct {
	WorkoutID          string      `json:"workout_id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Exercises          []Exercise  `json:"exercises"`
	StartTime          int64       `json:"start_time"`
	EndTime            int64       `json:"end_time"`
	AppleWatch         bool        `json:"apple_watch"`
	WearOSWatch        bool        `json:"wearos_watch"`
	IsPrivate          bool        `json:"is_private"`
	IsBiometricsPublic bool        `json:"is_biometrics_public"`
	Biometrics         *Biometrics `json:"biometrics,omitempty"`
}

type Exercise struct {
	Title                 string `json:"title"`
	ExerciseTemplateID    string `json:"exercise_template_id"`
	RestTimerSeconds      int    `json:"rest_timer_seconds"`
	Notes                 string `json:"notes"`
	VolumeDoublingEnabled bool   `json:"volume_doubling_enabled"`
	Sets                  []Set  `json:"sets"`
}

type Set struct {
	Index           int    `json:"index"`
	Type            string `json:"type"`
	DistanceMeters  int64  `json:"distance_meters"`
	DurationSeconds int64  `json:"duration_seconds"`
	CompletedAt     string `json:"completed_at"`
}

type Biometrics struct {
	TotalCalories    float64           `json:"total_calories"`
	HeartRateSamples []HeartRateSample `json:"heart_rate_samples"`
}

type HeartRateSample struct {
	TimestampMs int64 `json:"timestamp_ms"`
	BPM         int   `json:"bpm"`
}

// NewWorkoutRequest returns a fresh single exercise, single set workout
// request with the import defaults; callers fill in the activity data.
func NewWorkoutRequest() *WorkoutRequest {
	return &WorkoutRequest{
		Workout: Workout{
			Description: ImportDescription,
			Exercises: []Exercise{
				{
					RestTimerSeconds:      0,
					Notes:                 "",
					VolumeDoublingEnabled: false,
					Sets: []Set{
						{
							Index: 0,
							Type:  SetTypeNormal,
						},
					},
				},
			},
			AppleWatch:         false,
			WearOSWatch:        false,
			IsPrivate:          true,
			IsBiometricsPublic: true,
		},
		ShareToStrava: false,
	}
}
