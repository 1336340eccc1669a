package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "userpay_http_requests_total",
		Help: "HTTP requests by route, method and status",
	},
	[]string{"path", "method", "status"},
)

var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "userpay_http_request_duration_seconds",
		Help:    "HTTP request latency by route and method",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// GatewayCalls counts payment gateway calls by driver and outcome (ok|error).
var GatewayCalls = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "userpay_gateway_calls_total",
		Help: "Payment gateway calls by driver and outcome",
	},
	[]string{"driver", "outcome"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, GatewayCalls)
}
