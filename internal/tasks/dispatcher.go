package tasks

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/2beens/underthebar/internal/telemetry/metrics"
	"github.com/2beens/underthebar/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const DefaultMaxConcurrent = 5

type Kind string

const (
	KindFetch  Kind = "fetch"
	KindImport Kind = "import"
	KindSync   Kind = "sync"
)

type State string

const (
	StateQueued  State = "queued"
	StateRunning State = "running"
	StateDone    State = "done"
)

// Result is the single completion notification of a task.
type Result struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Status     int       `json:"status"`
	Label      string    `json:"label"`
	Error      string    `json:"error,omitempty"`
	Data       any       `json:"data,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

type Task struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	Result    *Result   `json:"result,omitempty"`
}

// Func is the work of a task. Its error is turned into a status code.
type Func func(ctx context.Context) (any, error)

type Dispatcher struct {
	ctx    context.Context
	cancel context.CancelFunc

	group   *errgroup.Group
	pending sync.WaitGroup

	mu        sync.RWMutex
	tasks     map[string]*Task
	callbacks []func(Result)

	statusCode     func(err error) int
	label          func(kind Kind, status int, data any) string
	metricsManager *metrics.Manager
}

type DispatcherParams struct {
	MaxConcurrent  int
	StatusCode     func(err error) int
	Label          func(kind Kind, status int, data any) string
	MetricsManager *metrics.Manager
}

func NewDispatcher(params DispatcherParams) *Dispatcher {
	maxConcurrent := params.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}

	group := &errgroup.Group{}
	group.SetLimit(maxConcurrent)

	ctx, cancel := context.WithCancel(context.Background())

	d := &Dispatcher{
		ctx:            ctx,
		cancel:         cancel,
		group:          group,
		tasks:          make(map[string]*Task),
		statusCode:     params.StatusCode,
		label:          params.Label,
		metricsManager: params.MetricsManager,
	}
	if d.statusCode == nil {
		d.statusCode = func(err error) int {
			if err != nil {
				return 0
			}
			return 200
		}
	}
	if d.label == nil {
		d.label = func(_ Kind, status int, _ any) string {
			return fmt.Sprintf("status %d", status)
		}
	}
	return d
}

// OnDone registers a callback called once for every finished task.
func (d *Dispatcher) OnDone(callback func(Result)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callbacks = append(d.callbacks, callback)
}

// Submit queues the task and returns its id right away.
func (d *Dispatcher) Submit(kind Kind, fn Func) string {
	task := &Task{
		ID:        uuid.NewString(),
		Kind:      kind,
		State:     StateQueued,
		CreatedAt: time.Now(),
	}

	d.mu.Lock()
	d.tasks[task.ID] = task
	d.mu.Unlock()

	log.Debugf("tasks: %s task %s queued", kind, task.ID)

	// group.Go blocks while the limit is reached
	d.pending.Add(1)
	go func() {
		defer d.pending.Done()
		d.group.Go(func() error {
			d.run(task.ID, kind, fn)
			return nil
		})
	}()

	return task.ID
}

func (d *Dispatcher) run(id string, kind Kind, fn Func) {
	ctx, span := tracing.GlobalTracer.Start(d.ctx, "tasks.run")
	span.SetAttributes(
		attribute.String("task.id", id),
		attribute.String("task.kind", string(kind)),
	)

	d.setState(id, StateRunning)
	if d.metricsManager != nil {
		d.metricsManager.GaugeRunningTasks.Inc()
		defer d.metricsManager.GaugeRunningTasks.Dec()
	}

	data, err := d.safeCall(ctx, id, fn)
	tracing.EndSpanWithErrCheck(span, err)

	status := d.statusCode(err)
	result := Result{
		ID:         id,
		Kind:       kind,
		Status:     status,
		Label:      d.label(kind, status, data),
		Data:       data,
		FinishedAt: time.Now(),
	}
	if err != nil {
		result.Error = err.Error()
		log.Errorf("tasks: %s task %s failed with status %d: %s", kind, id, status, err)
	} else {
		log.Debugf("tasks: %s task %s done", kind, id)
	}

	d.mu.Lock()
	if task, ok := d.tasks[id]; ok {
		task.State = StateDone
		task.Result = &result
	}
	callbacks := make([]func(Result), len(d.callbacks))
	copy(callbacks, d.callbacks)
	d.mu.Unlock()

	for _, callback := range callbacks {
		callback(result)
	}
}

// safeCall runs fn, turning a panic into an error.
func (d *Dispatcher) safeCall(ctx context.Context, id string, fn Func) (data any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("tasks: task %s panicked: %v\n%s", id, r, debug.Stack())
			if d.metricsManager != nil {
				d.metricsManager.CounterTaskPanics.Inc()
			}
			data = nil
			err = fmt.Errorf("task panic: %v", r)
		}
	}()
	return fn(ctx)
}

func (d *Dispatcher) setState(id string, state State) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if task, ok := d.tasks[id]; ok {
		task.State = state
	}
}

// Get returns a snapshot of the task.
func (d *Dispatcher) Get(id string) (Task, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	task, ok := d.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *task, true
}

// Wait blocks until every submitted task is done.
func (d *Dispatcher) Wait() {
	d.pending.Wait()
	_ = d.group.Wait()
}

// Close cancels the running tasks and waits for them to finish.
func (d *Dispatcher) Close() {
	d.cancel()
	d.Wait()
}
