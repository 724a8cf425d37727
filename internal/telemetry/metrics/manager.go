package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterImports            *prometheus.CounterVec
	CounterFetches            *prometheus.CounterVec
	CounterStravaAPICalls     *prometheus.CounterVec
	CounterHevyAPICalls       *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter
	CounterTaskPanics         prometheus.Counter

	// gauges
	GaugeRunningTasks prometheus.Gauge

	// histograms
	HistImportDuration       prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("utb", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("utb", "test", reg), reg
}

// SetupPrometheus creates a registry with go runtime and process collectors.
func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promRegistry
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming settings requests",
	}, []string{"method", "status"})
	counterImports := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "imports",
		Help:      "The total number of strava -> hevy imports, by resulting status code",
	}, []string{"status"})
	counterFetches := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "activity_fetches",
		Help:      "The total number of recent activities fetches, by resulting status code",
	}, []string{"status"})
	counterStravaAPICalls := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "strava_api_calls",
		Help:      "The total number of strava API calls",
	}, []string{"endpoint", "status"})
	counterHevyAPICalls := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "hevy_api_calls",
		Help:      "The total number of hevy API calls",
	}, []string{"endpoint", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterTaskPanics := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "task_panics",
		Help:      "The total number of recovered background task panics",
	})

	gaugeRunningTasks := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "running_tasks",
		Help:      "Current number of running background tasks",
	})

	histImportDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "import_duration_seconds",
		Help:      "Total duration of a single activity import in seconds",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	})
	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method", "status_code"})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterImports:            counterImports,
		CounterFetches:            counterFetches,
		CounterStravaAPICalls:     counterStravaAPICalls,
		CounterHevyAPICalls:       counterHevyAPICalls,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		CounterTaskPanics:         counterTaskPanics,
		GaugeRunningTasks:         gaugeRunningTasks,
		HistImportDuration:        histImportDuration,
		HistogramRequestDuration:  histogramRequestDuration,
	}
}
