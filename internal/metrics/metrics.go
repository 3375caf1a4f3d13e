// Package metrics collects Prometheus metrics of the client session and
// exposes them on an optional local endpoint.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is what services and the CLI report to.
type Recorder interface {
	ObserveRequest(op string, d time.Duration, err error)
	RecordNotification(severity string)
	RecordScreenView(screen string)
	RecordCall(event string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	screenViews   *prometheus.CounterVec
	calls         *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saludconecta_requests_total",
			Help: "Collaborator requests by operation and outcome.",
		}, []string{"op", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "saludconecta_request_duration_seconds",
			Help:    "Collaborator request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saludconecta_notifications_total",
			Help: "Notifications added to the feed by severity.",
		}, []string{"severity"}),
		screenViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saludconecta_screen_views_total",
			Help: "Screen transitions by destination.",
		}, []string{"screen"}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saludconecta_calls_total",
			Help: "Video call lifecycle events.",
		}, []string{"event"}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.notifications,
		c.screenViews,
		c.calls,
	)

	return c
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func (c *Collector) ObserveRequest(op string, d time.Duration, err error) {
	c.requests.WithLabelValues(op, outcome(err)).Inc()
	c.latency.WithLabelValues(op).Observe(d.Seconds())
}

func (c *Collector) RecordNotification(severity string) {
	c.notifications.WithLabelValues(severity).Inc()
}

func (c *Collector) RecordScreenView(screen string) {
	c.screenViews.WithLabelValues(screen).Inc()
}

func (c *Collector) RecordCall(event string) {
	c.calls.WithLabelValues(event).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) ObserveRequest(string, time.Duration, error) {}
func (Nop) RecordNotification(string)                  {}
func (Nop) RecordScreenView(string)                    {}
func (Nop) RecordCall(string)                          {}
