package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/matzehuels/flowreach/pkg/observability"
)

// Metrics holds the Prometheus collectors for the server. It implements
// both observability.EngineHooks and observability.HTTPHooks.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reportsTotal    *prometheus.CounterVec
	reportDuration  *prometheus.HistogramVec
	reportNodes     prometheus.Histogram
	traversalsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them, together with the
// Go and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowreach_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flowreach_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		reportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowreach_reports_total",
				Help: "Total reports computed, by traversal mode and result",
			},
			[]string{"mode", "result"},
		),
		reportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flowreach_report_duration_seconds",
				Help:    "Report computation time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"mode"},
		),
		reportNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flowreach_report_nodes",
				Help:    "Node count of graphs submitted for reports",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		traversalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowreach_traversals_total",
				Help: "Total single-source traversals",
			},
			[]string{"mode"},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal, m.requestDuration,
		m.reportsTotal, m.reportDuration, m.reportNodes, m.traversalsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) OnReportStart(_ context.Context, _ string, nodeCount int) {
	m.reportNodes.Observe(float64(nodeCount))
}

func (m *Metrics) OnTraversal(_ context.Context, mode string, _, _ int, _ time.Duration) {
	m.traversalsTotal.WithLabelValues(mode).Inc()
}

func (m *Metrics) OnReportComplete(_ context.Context, mode string, _ int, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reportsTotal.WithLabelValues(mode, result).Inc()
	m.reportDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (m *Metrics) OnRequest(context.Context, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ observability.EngineHooks = (*Metrics)(nil)
	_ observability.HTTPHooks   = (*Metrics)(nil)
)
