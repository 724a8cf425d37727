package importer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/underthebar/internal/hevy"
	"github.com/2beens/underthebar/internal/strava"
)

var (
	ErrNotLoggedIn    = errors.New("not logged in to hevy")
	ErrNotSubmittable = errors.New("activity type not in submittable types")
)

const (
	// StatusFailed is reported for errors with no status of their own,
	// including recovered panics.
	StatusFailed = 0

	LabelCompleted       = "completed"
	LabelConfigMissing   = "API details not found"
	LabelNoMatches       = "No matching activities found"
	LabelFetching        = "fetching activities..."
	LabelImporting       = "importing..."
	labelFailedFormatted = "failed (code %d)"
)

// StatusCode maps an import or fetch error onto the status code reported to the user.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var hevyErr *hevy.StatusError
	switch {
	case errors.Is(err, strava.ErrConfigMissing):
		return http.StatusNotFound
	case errors.Is(err, ErrNotLoggedIn):
		return http.StatusForbidden
	case errors.Is(err, ErrNotSubmittable):
		return http.StatusBadRequest
	case errors.As(err, &hevyErr):
		return hevyErr.StatusCode
	default:
		return StatusFailed
	}
}

// StatusLabel is the short text shown for a finished task.
func StatusLabel(code int) string {
	switch code {
	case http.StatusOK:
		return LabelCompleted
	case http.StatusNotFound:
		return LabelConfigMissing
	default:
		return fmt.Sprintf(labelFailedFormatted, code)
	}
}
