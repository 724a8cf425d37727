package strava

import "slices"

// ActivityType binds a strava activity type to the hevy exercise it is imported as.
type ActivityType struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	TemplateID string `json:"template_id"`
}

const (
	customRideUserID = "f21f5af1-a602-48f0-82fb-ed09bc984326"
)

var (
	Run  = ActivityType{Type: "Run", Title: "Running", TemplateID: "AC1BB830"}
	Ride = ActivityType{Type: "Ride", Title: "Cycling", TemplateID: "D8F7F851"}
	Walk = ActivityType{Type: "Walk", Title: "Walking", TemplateID: "33EDD7DB"}
	Hike = ActivityType{Type: "Hike", Title: "Hiking", TemplateID: "1C34A172"}

	// VirtualRide is a custom exercise template, only present in a single hevy account.
	VirtualRide = ActivityType{
		Type:       "VirtualRide",
		Title:      "Cycling (Virtual)",
		TemplateID: "89f3ed93-5418-4cc6-a114-0590f2977ae8",
	}
)

// AllActivityTypes returns the fixed catalog, in display order.
func AllActivityTypes() []ActivityType {
	return []ActivityType{Run, Ride, Walk, Hike}
}

// AllTypeNames returns the type names of the fixed catalog.
func AllTypeNames() []string {
	all := AllActivityTypes()
	names := make([]string, 0, len(all))
	for _, at := range all {
		names = append(names, at.Type)
	}
	return names
}

// KnownType tells if name is a catalog type or the custom one.
func KnownType(name string) bool {
	if name == VirtualRide.Type {
		return true
	}
	return slices.Contains(AllTypeNames(), name)
}

// Matches reports whether the activity kind is this type, either directly
// or through the root of a composite descriptor.
func (a ActivityType) Matches(kind ActivityKind) bool {
	if kind.Name == a.Type {
		return true
	}
	return kind.Root != "" && kind.Root == a.Type
}

// SubmittableTypes resolves the activity types an import may use.
// A nil enabled list means every catalog type is enabled; an empty one means none.
// The custom virtual ride is added only for its owner and only when enabled.
func SubmittableTypes(enabled []string, userID string) []ActivityType {
	var types []ActivityType
	for _, at := range AllActivityTypes() {
		if enabled == nil || slices.Contains(enabled, at.Type) {
			types = append(types, at)
		}
	}

	if userID == customRideUserID && slices.Contains(enabled, VirtualRide.Type) {
		types = append(types, VirtualRide)
	}

	return types
}

// MatchType returns the first of the given types matching kind.
func MatchType(types []ActivityType, kind ActivityKind) (ActivityType, bool) {
	for _, at := range types {
		if at.Matches(kind) {
			return at, true
		}
	}
	return ActivityType{}, false
}
