package issues

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	OutcomeLabel = "outcome"

	OutcomeCreated        = "created"
	OutcomeRejected       = "rejected"
	OutcomeInvalid        = "invalid"
	OutcomeUpstreamFailed = "upstream_failed"
	OutcomeNotAllowed     = "method_not_allowed"
)

type metrics struct {
	registry         *prometheus.Registry
	requests         *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "truthtable_issue_requests_total",
				Help: "Issue report requests by outcome",
			},
			[]string{OutcomeLabel},
		),
		upstreamDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "truthtable_issue_upstream_duration_seconds",
				Help:    "Time spent waiting for the issue tracker",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	m.registry.MustRegister(m.requests, m.upstreamDuration)
	return m
}

func (m *metrics) handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
