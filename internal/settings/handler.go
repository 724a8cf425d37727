// Package settings is the local HTTP surface of underthebar: activity type
// filters, strava credentials, background fetch/import tasks and rep maxes.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/underthebar/internal/config"
	"github.com/2beens/underthebar/internal/importer"
	"github.com/2beens/underthebar/internal/repmax"
	"github.com/2beens/underthebar/internal/strava"
	"github.com/2beens/underthebar/internal/tasks"
	"github.com/2beens/underthebar/internal/telemetry/tracing"
	"github.com/2beens/underthebar/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=settings_test

type filtersStore interface {
	ActivityTypeFilters() ([]string, bool, error)
	SetActivityTypeFilters(types []string) error
}

type importService interface {
	FetchRecent(ctx context.Context, enabled []string) ([]importer.FetchedActivity, error)
	Import(ctx context.Context, activityID int64, enabled []string) (*importer.ImportResult, error)
	Sync(ctx context.Context) (*importer.ImportResult, error)
}

type taskDispatcher interface {
	Submit(kind tasks.Kind, fn tasks.Func) string
	Get(id string) (tasks.Task, bool)
}

type repMaxService interface {
	Exercises(ctx context.Context) ([]repmax.ExerciseOption, error)
	History(ctx context.Context, exerciseTitle string) (*repmax.History, error)
}

type loginChecker interface {
	IsLoggedIn() (bool, string, string)
}

const DevModeWarning = "DEV MODE: all imported activities will be set to private"

type Handler struct {
	filters     filtersStore
	importer    importService
	dispatcher  taskDispatcher
	repMax      repMaxService
	login       loginChecker
	taskEvents  http.HandlerFunc
	environment string

	envFilePath        string
	credentialsChanged func()
	checkCredentials   func(ctx context.Context, creds config.StravaCredentials) (bool, string)
}

type HandlerParams struct {
	Filters    filtersStore
	Importer   importService
	Dispatcher taskDispatcher
	RepMax     repMaxService
	Login      loginChecker
	// TaskEvents streams the task completions, usually tasks.Hub.ServeWS.
	TaskEvents  http.HandlerFunc
	Environment string

	// EnvFilePath is the .env file the strava credentials are saved to.
	EnvFilePath string
	// CredentialsChanged is called after new credentials are saved.
	CredentialsChanged func()
	CheckCredentials   func(ctx context.Context, creds config.StravaCredentials) (bool, string)
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		filters:            params.Filters,
		importer:           params.Importer,
		dispatcher:         params.Dispatcher,
		repMax:             params.RepMax,
		login:              params.Login,
		taskEvents:         params.TaskEvents,
		environment:        params.Environment,
		envFilePath:        params.EnvFilePath,
		credentialsChanged: params.CredentialsChanged,
		checkCredentials:   params.CheckCredentials,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/status", h.handleStatus).Methods("GET").Name("status")

	api.HandleFunc("/strava/filters", h.handleGetFilters).Methods("GET", "OPTIONS").Name("get-filters")
	api.HandleFunc("/strava/filters", h.handleSetFilters).Methods("PUT", "OPTIONS").Name("set-filters")
	api.HandleFunc("/strava/credentials", h.handleSaveCredentials).Methods("PUT", "OPTIONS").Name("save-credentials")
	api.HandleFunc("/strava/credentials/test", h.handleTestCredentials).Methods("POST", "OPTIONS").Name("test-credentials")
	api.HandleFunc("/strava/activities", h.handleFetchActivities).Methods("POST", "OPTIONS").Name("fetch-activities")
	api.HandleFunc("/strava/import/{id}", h.handleImport).Methods("POST", "OPTIONS").Name("import-activity")
	api.HandleFunc("/strava/sync", h.handleSync).Methods("POST", "OPTIONS").Name("sync")

	// events first, so it is not taken for a task id
	if h.taskEvents != nil {
		api.HandleFunc("/tasks/events", h.taskEvents).Methods("GET").Name("task-events")
	}
	api.HandleFunc("/tasks/{id}", h.handleGetTask).Methods("GET", "OPTIONS").Name("get-task")

	api.HandleFunc("/repmax/exercises", h.handleRepMaxExercises).Methods("GET", "OPTIONS").Name("repmax-exercises")
	api.HandleFunc("/repmax/exercises/{title}", h.handleRepMaxHistory).Methods("GET", "OPTIONS").Name("repmax-history")
}

// enabledTypes returns the saved activity type filters, nil when none were
// ever saved (meaning all types are enabled).
func (h *Handler) enabledTypes() ([]string, error) {
	filters, found, err := h.filters.ActivityTypeFilters()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return filters, nil
}

type statusResponse struct {
	Environment    string `json:"environment"`
	DevModeWarning string `json:"dev_mode_warning,omitempty"`
	HevyLoggedIn   bool   `json:"hevy_logged_in"`
}

func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	loggedIn, _, _ := h.login.IsLoggedIn()
	resp := statusResponse{
		Environment:  h.environment,
		HevyLoggedIn: loggedIn,
	}
	if h.environment != config.EnvProduction {
		resp.DevModeWarning = DevModeWarning
	}
	pkg.SendJsonResponse(w, http.StatusOK, resp)
}

type activityTypeFilter struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
}

func (h *Handler) handleGetFilters(w http.ResponseWriter, _ *http.Request) {
	enabled, err := h.enabledTypes()
	if err != nil {
		log.Errorf("get activity type filters: %s", err)
		http.Error(w, "failed to read filters", http.StatusInternalServerError)
		return
	}

	enabledSet := make(map[string]bool, len(enabled))
	for _, t := range enabled {
		enabledSet[t] = true
	}

	var filters []activityTypeFilter
	for _, at := range strava.AllActivityTypes() {
		filters = append(filters, activityTypeFilter{
			Type:    at.Type,
			Title:   at.Title,
			Enabled: enabled == nil || enabledSet[at.Type],
		})
	}
	pkg.SendJsonResponse(w, http.StatusOK, filters)
}

type setFiltersRequest struct {
	Types []string `json:"types"`
}

func (h *Handler) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var req setFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	for _, t := range req.Types {
		if !strava.KnownType(t) {
			http.Error(w, "unknown activity type: "+t, http.StatusBadRequest)
			return
		}
	}

	if err := h.filters.SetActivityTypeFilters(req.Types); err != nil {
		log.Errorf("save activity type filters: %s", err)
		http.Error(w, "failed to save filters", http.StatusInternalServerError)
		return
	}

	log.Debugf("activity type filters saved: %v", req.Types)
	h.handleGetFilters(w, r)
}

type credentialsRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func (c credentialsRequest) toCredentials() config.StravaCredentials {
	return config.StravaCredentials{
		ClientID:     strings.TrimSpace(c.ClientID),
		ClientSecret: strings.TrimSpace(c.ClientSecret),
	}
}

type messageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func (h *Handler) handleSaveCredentials(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.SaveStravaCredentials(h.envFilePath, req.toCredentials()); err != nil {
		log.Errorf("save strava credentials: %s", err)
		http.Error(w, "failed to save credentials", http.StatusInternalServerError)
		return
	}
	if h.credentialsChanged != nil {
		h.credentialsChanged()
	}

	pkg.SendJsonResponse(w, http.StatusOK, messageResponse{OK: true, Message: "Saved"})
}

// handleTestCredentials probes the given credentials, or the saved ones
// when the request has no body.
func (h *Handler) handleTestCredentials(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "settingsHandler.testCredentials")
	defer span.End()

	creds := config.StravaCredentialsFromEnv()
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		creds = req.toCredentials()
	}

	ok, message := h.checkCredentials(ctx, creds)
	span.SetAttributes(attribute.Bool("credentials.ok", ok))
	pkg.SendJsonResponse(w, http.StatusOK, messageResponse{OK: ok, Message: message})
}

type taskResponse struct {
	TaskID string `json:"task_id"`
	Label  string `json:"label"`
}

func (h *Handler) handleFetchActivities(w http.ResponseWriter, _ *http.Request) {
	enabled, err := h.enabledTypes()
	if err != nil {
		log.Errorf("get activity type filters: %s", err)
		http.Error(w, "failed to read filters", http.StatusInternalServerError)
		return
	}

	taskID := h.dispatcher.Submit(tasks.KindFetch, func(ctx context.Context) (any, error) {
		activities, err := h.importer.FetchRecent(ctx, enabled)
		if err != nil {
			return nil, err
		}
		return activities, nil
	})

	pkg.SendJsonResponse(w, http.StatusAccepted, taskResponse{TaskID: taskID, Label: importer.LabelFetching})
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	activityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || activityID <= 0 {
		http.Error(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	enabled, err := h.enabledTypes()
	if err != nil {
		log.Errorf("get activity type filters: %s", err)
		http.Error(w, "failed to read filters", http.StatusInternalServerError)
		return
	}

	taskID := h.dispatcher.Submit(tasks.KindImport, func(ctx context.Context) (any, error) {
		result, err := h.importer.Import(ctx, activityID, enabled)
		if err != nil {
			return nil, err
		}
		return result, nil
	})

	pkg.SendJsonResponse(w, http.StatusAccepted, taskResponse{TaskID: taskID, Label: importer.LabelImporting})
}

// handleSync imports the newest activity of any type, ignoring the filters.
func (h *Handler) handleSync(w http.ResponseWriter, _ *http.Request) {
	taskID := h.dispatcher.Submit(tasks.KindSync, func(ctx context.Context) (any, error) {
		result, err := h.importer.Sync(ctx)
		if err != nil {
			return nil, err
		}
		return result, nil
	})

	pkg.SendJsonResponse(w, http.StatusAccepted, taskResponse{TaskID: taskID, Label: importer.LabelImporting})
}

func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.dispatcher.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, task)
}

func (h *Handler) handleRepMaxExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.repMax.Exercises(r.Context())
	if err != nil {
		log.Errorf("list rep max exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []repmax.ExerciseOption{}
	}
	pkg.SendJsonResponse(w, http.StatusOK, exercises)
}

func (h *Handler) handleRepMaxHistory(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]
	history, err := h.repMax.History(r.Context(), title)
	if err != nil {
		if errors.Is(err, repmax.ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("rep max history for [%s]: %s", title, err)
		http.Error(w, "failed to get rep max history", http.StatusInternalServerError)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, history)
}
