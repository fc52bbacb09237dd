// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventboard",
		Subsystem: "admission",
		Name:      "requests_confirmed_total",
		Help:      "Participation requests confirmed, including auto confirmations.",
	})

	RequestsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventboard",
		Subsystem: "admission",
		Name:      "requests_rejected_total",
		Help:      "Participation requests rejected, including cascade rejections.",
	})

	HitsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventboard",
		Subsystem: "stats",
		Name:      "hits_recorded_total",
		Help:      "Endpoint hits forwarded to the analytics backend.",
	})

	AnalyticsFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventboard",
		Subsystem: "stats",
		Name:      "analytics_failures_total",
		Help:      "Analytics operations that failed and were dropped.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
