package strava

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ActivityKind is the type of an activity as sent by strava. It is either a
// plain string ("Run") or a composite descriptor with a root type ({"root":"Run"}).
type ActivityKind struct {
	Name string
	Root string
}

func (k *ActivityKind) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*k = ActivityKind{}
		return nil
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("unmarshal activity type: %w", err)
		}
		*k = ActivityKind{Name: name}
		return nil
	}

	var composite struct {
		Root string `json:"root"`
	}
	if err := json.Unmarshal(data, &composite); err != nil {
		return fmt.Errorf("unmarshal composite activity type: %w", err)
	}
	*k = ActivityKind{Root: composite.Root}
	return nil
}

func (k ActivityKind) MarshalJSON() ([]byte, error) {
	if k.Name == "" && k.Root != "" {
		return json.Marshal(map[string]string{"root": k.Root})
	}
	return json.Marshal(k.Name)
}

func (k ActivityKind) String() string {
	if k.Name != "" {
		return k.Name
	}
	if k.Root != "" {
		return fmt.Sprintf("root='%s'", k.Root)
	}
	return ""
}

type Athlete struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// SummaryActivity is an item of the athlete activities list.
type SummaryActivity struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Type        ActivityKind `json:"type"`
	SportType   string       `json:"sport_type"`
	StartDate   time.Time    `json:"start_date"`
	Distance    float64      `json:"distance"`
	MovingTime  int64        `json:"moving_time"`
	ElapsedTime int64        `json:"elapsed_time"`
}

// DetailedActivity holds the fields of a single activity needed to build a workout.
type DetailedActivity struct {
	SummaryActivity

	StartDateLocal   time.Time `json:"start_date_local"`
	Description      string    `json:"description"`
	DeviceName       string    `json:"device_name"`
	Calories         float64   `json:"calories"`
	HasHeartrate     bool      `json:"has_heartrate"`
	AverageHeartrate float64   `json:"average_heartrate"`
	MaxHeartrate     float64   `json:"max_heartrate"`
	AverageWatts     float64   `json:"average_watts"`
	MaxWatts         int64     `json:"max_watts"`
}

const (
	StreamTime      = "time"
	StreamHeartrate = "heartrate"
)

type Stream struct {
	Data         []float64 `json:"data"`
	SeriesType   string    `json:"series_type"`
	OriginalSize int       `json:"original_size"`
	Resolution   string    `json:"resolution"`
}

// StreamSet is a streams response keyed by stream type.
type StreamSet map[string]Stream

func (s StreamSet) Get(key string) (Stream, bool) {
	stream, ok := s[key]
	return stream, ok
}
