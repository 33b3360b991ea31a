package metrics

import (
	"net/http"
	"strconv"
	"time"

	"calling-tracker-backend/internal/database/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "calling_tracker"

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	registry *prometheus.Registry

	transitions    *prometheus.CounterVec
	tasksGenerated *prometheus.CounterVec
	syncRuns       *prometheus.CounterVec
	syncDuration   prometheus.Histogram
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	m := &Metrics{registry: reg}

	m.transitions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "calling changes entering each workflow status",
		},
		[]string{"status"},
	)
	m.tasksGenerated = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_generated_total",
			Help:      "checklist tasks generated on approval",
		},
		[]string{"task_type"},
	)
	m.syncRuns = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "external sync runs by result",
		},
		[]string{"result"},
	)
	m.syncDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "duration of external sync runs",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)
	m.httpRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "code"},
	)
	m.httpDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	return m
}

// ObserveTransition counts a calling change entering status to
func (m *Metrics) ObserveTransition(to models.CallingChangeStatus) {
	m.transitions.WithLabelValues(string(to)).Inc()
}

// ObserveTasksGenerated counts generated tasks by type
func (m *Metrics) ObserveTasksGenerated(tasks []models.CallingChangeTask) {
	for _, t := range tasks {
		m.tasksGenerated.WithLabelValues(string(t.TaskType)).Inc()
	}
}

// ObserveSyncRun records the outcome and duration of a sync run
func (m *Metrics) ObserveSyncRun(result string, duration time.Duration) {
	m.syncRuns.WithLabelValues(result).Inc()
	m.syncDuration.Observe(duration.Seconds())
}

// ObserveHTTPRequest records one served request. route is the matched route
// pattern, never the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
