package settings

import (
	"net/http"

	"github.com/2beens/underthebar/internal/importer"
	"github.com/2beens/underthebar/internal/tasks"
)

// TaskLabel is the status text of a finished task. A successful fetch with
// no activities reports that nothing matched.
func TaskLabel(kind tasks.Kind, status int, data any) string {
	if kind == tasks.KindFetch && status == http.StatusOK {
		if activities, ok := data.([]importer.FetchedActivity); ok && len(activities) == 0 {
			return importer.LabelNoMatches
		}
	}
	if kind == tasks.KindSync && status == http.StatusOK {
		if result, ok := data.(*importer.ImportResult); ok && result == nil {
			return importer.LabelNoMatches
		}
	}
	return importer.StatusLabel(status)
}
