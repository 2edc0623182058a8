// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marina"

var _ service.MetricsRecorder = (*Metrics)(nil)

// Metrics holds every collector on a private registry
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	clockIns            *prometheus.CounterVec
	clockOuts           *prometheus.CounterVec
	shiftsGenerated     prometheus.Counter
	incidentsReviewed   prometheus.Counter
	checklistsSubmitted prometheus.Counter
}

// New creates the collectors and registers them together with the Go runtime collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		clockIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clock_ins_total",
			Help:      "Duty sessions opened, by role of the user.",
		}, []string{"role"}),
		clockOuts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clock_outs_total",
			Help:      "Duty sessions closed, by kind (self or override).",
		}, []string{"kind"}),
		shiftsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shifts_generated_total",
			Help:      "Shifts created by recurring pattern expansion.",
		}),
		incidentsReviewed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_reviewed_total",
			Help:      "Incident logs reviewed by a supervisor.",
		}),
		checklistsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checklists_submitted_total",
			Help:      "On-duty safety checklists submitted.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.clockIns,
		m.clockOuts,
		m.shiftsGenerated,
		m.incidentsReviewed,
		m.checklistsSubmitted,
	)
	return m
}

// Registry returns the registry backing the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request. route is the matched pattern, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ClockIn(role models.Role) {
	m.clockIns.WithLabelValues(string(role)).Inc()
}

func (m *Metrics) ClockOut(kind string) {
	m.clockOuts.WithLabelValues(kind).Inc()
}

func (m *Metrics) ShiftsGenerated(n int) {
	if n > 0 {
		m.shiftsGenerated.Add(float64(n))
	}
}

func (m *Metrics) IncidentReviewed() {
	m.incidentsReviewed.Inc()
}

func (m *Metrics) ChecklistSubmitted() {
	m.checklistsSubmitted.Inc()
}
