package hevy

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/underthebar/internal/telemetry/metrics"
	"github.com/2beens/underthebar/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	APIKey = "with_great_power"

	accountCacheExpire = 60 * 60 // seconds
)

// StatusError is an unexpected status returned by the hevy API. Its code is
// reported to the caller as is.
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hevy %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpsertResult tells how a workout ended up stored.
type UpsertResult struct {
	WorkoutID  string
	StatusCode int
	Updated    bool
}

type Client struct {
	apiURL         string
	httpClient     *http.Client
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewClient(apiURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	megabyte := 1024 * 1024
	return &Client{
		apiURL:         strings.TrimRight(apiURL, "/"),
		httpClient:     httpClient,
		cache:          freecache.NewCache(megabyte),
		metricsManager: metricsManager,
	}
}

// Account returns the account of the auth token owner. Lookups are cached per token.
func (c *Client) Account(ctx context.Context, authToken string) (account *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.account")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	account = &Account{}
	cacheKey := accountCacheKey(authToken)
	if accountBytes, err := c.cache.Get(cacheKey); err == nil {
		if err := json.Unmarshal(accountBytes, account); err == nil {
			log.Tracef("hevy: account %s found in cache", account.Username)
			return account, nil
		} else {
			log.Errorf("hevy: unmarshal cached account: %s", err)
		}
	}

	respBytes, statusCode, err := c.do(ctx, "account", http.MethodGet, "/account", authToken, nil)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: statusCode, Method: http.MethodGet, Path: "/account", Body: string(respBytes)}
	}

	if err := json.Unmarshal(respBytes, account); err != nil {
		return nil, fmt.Errorf("unmarshal hevy account: %w", err)
	}

	if err := c.cache.Set(cacheKey, respBytes, accountCacheExpire); err != nil {
		log.Errorf("hevy: cache account: %s", err)
	}

	return account, nil
}

// CreateWorkout posts a new workout. The returned status is the raw response status.
func (c *Client) CreateWorkout(ctx context.Context, authToken string, req *WorkoutRequest) (statusCode int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.createWorkout")
	span.SetAttributes(attribute.String("workout.id", req.Workout.WorkoutID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("marshal workout: %w", err)
	}

	_, statusCode, err = c.do(ctx, "create_workout", http.MethodPost, "/v2/workout", authToken, payload)
	if err != nil {
		return 0, err
	}
	log.Printf("hevy: POST workout %s: %d", req.Workout.WorkoutID, statusCode)
	return statusCode, nil
}

// UpdateWorkout replaces the workout with the id of the request.
func (c *Client) UpdateWorkout(ctx context.Context, authToken string, req *WorkoutRequest) (statusCode int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.updateWorkout")
	span.SetAttributes(attribute.String("workout.id", req.Workout.WorkoutID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("marshal workout: %w", err)
	}

	_, statusCode, err = c.do(ctx, "update_workout", http.MethodPut, "/v2/workout/"+req.Workout.WorkoutID, authToken, payload)
	if err != nil {
		return 0, err
	}
	log.Printf("hevy: PUT workout %s: %d", req.Workout.WorkoutID, statusCode)
	return statusCode, nil
}

// UpsertWorkout creates the workout, or updates it when hevy reports it
// already exists (409). Any final status other than 200/201 is a *StatusError.
func (c *Client) UpsertWorkout(ctx context.Context, authToken string, req *WorkoutRequest) (result UpsertResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.upsertWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	result.WorkoutID = req.Workout.WorkoutID
	method, path := http.MethodPost, "/v2/workout"

	statusCode, err := c.CreateWorkout(ctx, authToken, req)
	if err != nil {
		return result, err
	}

	if statusCode == http.StatusConflict {
		log.Printf("hevy: workout %s already exists, updating it", req.Workout.WorkoutID)
		method, path = http.MethodPut, "/v2/workout/"+req.Workout.WorkoutID
		result.Updated = true
		statusCode, err = c.UpdateWorkout(ctx, authToken, req)
		if err != nil {
			return result, err
		}
	}

	result.StatusCode = statusCode
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return result, &StatusError{StatusCode: statusCode, Method: method, Path: path}
	}

	return result, nil
}

func (c *Client) do(ctx context.Context, endpoint, method, path, authToken string, body []byte) ([]byte, int, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, bodyReader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("x-api-key", APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countCall(endpoint, "error")
		return nil, 0, fmt.Errorf("hevy http client do: %w", err)
	}
	defer resp.Body.Close()

	c.countCall(endpoint, strconv.Itoa(resp.StatusCode))

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read hevy %s response: %w", endpoint, err)
	}
	return respBytes, resp.StatusCode, nil
}

func (c *Client) countCall(endpoint, status string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterHevyAPICalls.WithLabelValues(endpoint, status).Inc()
}

func accountCacheKey(authToken string) []byte {
	sum := sha256.Sum256([]byte(authToken))
	return []byte("account::" + hex.EncodeToString(sum[:]))
}
