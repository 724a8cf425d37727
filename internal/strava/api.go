package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/2beens/underthebar/internal/telemetry/metrics"
	"github.com/2beens/underthebar/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"
)

// https://developers.strava.com/docs/reference/

type tokenProvider interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// APIError is a non 2xx response of the strava API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("strava api %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

type Client struct {
	apiURL         string
	tokens         tokenProvider
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewClient(
	apiURL string,
	tokens tokenProvider,
	httpClient *http.Client,
	metricsManager *metrics.Manager,
) *Client {
	return &Client{
		apiURL:         strings.TrimRight(apiURL, "/"),
		tokens:         tokens,
		httpClient:     httpClient,
		metricsManager: metricsManager,
	}
}

func (c *Client) GetAthlete(ctx context.Context) (athlete *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.client.getAthlete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	athlete = &Athlete{}
	if err := c.get(ctx, "athlete", "/athlete", nil, athlete); err != nil {
		return nil, err
	}
	return athlete, nil
}

// ListActivities returns the most recent activities of the athlete, newest first.
func (c *Client) ListActivities(ctx context.Context, limit int) (activities []SummaryActivity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.client.listActivities")
	span.SetAttributes(attribute.Int("limit", limit))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(limit))
	params.Set("page", "1")

	activities = []SummaryActivity{}
	if err := c.get(ctx, "athlete_activities", "/athlete/activities", params, &activities); err != nil {
		return nil, err
	}
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (c *Client) GetActivity(ctx context.Context, id int64) (activity *DetailedActivity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.client.getActivity")
	span.SetAttributes(attribute.Int64("activity.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activity = &DetailedActivity{}
	if err := c.get(ctx, "activity", fmt.Sprintf("/activities/%d", id), nil, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// GetActivityStreams returns the requested streams of an activity, keyed by type.
func (c *Client) GetActivityStreams(ctx context.Context, id int64, keys []string) (streams StreamSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.client.getActivityStreams")
	span.SetAttributes(
		attribute.Int64("activity.id", id),
		attribute.StringSlice("keys", keys),
	)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params := url.Values{}
	params.Set("keys", strings.Join(keys, ","))
	params.Set("key_by_type", "true")

	streams = StreamSet{}
	if err := c.get(ctx, "activity_streams", fmt.Sprintf("/activities/%d/streams", id), params, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, target any) error {
	// missing credentials fail here, before any request goes out
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	reqURL := c.apiURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	token.SetAuthHeader(req)
	req.Header.Set("Accept", "application/json")

	log.Tracef("strava: GET %s", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countCall(endpoint, "error")
		return fmt.Errorf("strava http client do: %w", err)
	}
	defer resp.Body.Close()

	c.countCall(endpoint, strconv.Itoa(resp.StatusCode))

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read strava %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    strings.TrimSpace(string(respBytes)),
		}
	}

	if err := json.Unmarshal(respBytes, target); err != nil {
		return fmt.Errorf("unmarshal strava %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) countCall(endpoint, status string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterStravaAPICalls.WithLabelValues(endpoint, status).Inc()
}
