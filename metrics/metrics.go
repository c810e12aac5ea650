// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ranked_pick"

// Tabulation outcomes.
const (
	OutcomeComplete  = "complete"
	OutcomeExhausted = "exhausted"
	OutcomeFailed    = "failed"
)

// Metrics owns a private registry so tests and multiple servers never
// collide on the global one. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ballots         prometheus.Counter
	tabulations     *prometheus.CounterVec
	rounds          prometheus.Histogram
}

// New registers the server's collectors plus the Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		ballots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ballots_submitted_total",
			Help:      "Ballots accepted into open elections.",
		}),
		tabulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tabulations_total",
			Help:      "Completed tabulations by outcome.",
		}, []string{"outcome"}),
		rounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tabulation_rounds",
			Help:      "Rounds needed to fill every seat.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.ballots,
		m.tabulations,
		m.rounds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// BallotSubmitted counts one accepted ballot.
func (m *Metrics) BallotSubmitted() {
	if m == nil {
		return
	}
	m.ballots.Inc()
}

// Tabulated records a tabulation outcome. Rounds are only observed for
// tabulations that ran.
func (m *Metrics) Tabulated(outcome string, rounds int) {
	if m == nil {
		return
	}
	m.tabulations.WithLabelValues(outcome).Inc()
	if outcome != OutcomeFailed {
		m.rounds.Observe(float64(rounds))
	}
}
