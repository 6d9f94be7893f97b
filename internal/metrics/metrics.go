// Package metrics holds the Prometheus collectors exported by the ledger server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pokerledger"

// Metrics records RPC and ledger activity.
type Metrics struct {
	// RPC metrics
	RPCDuration *prometheus.HistogramVec

	// Ledger metrics
	GamesRecorded        prometheus.Counter
	TransactionsRecorded prometheus.Counter
	ValidationRejections *prometheus.CounterVec
	IntegrityWarnings    prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RPCDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Duration of ledger RPCs by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),

		GamesRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_recorded_total",
			Help:      "Game sessions accepted and stored.",
		}),
		TransactionsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_recorded_total",
			Help:      "Settlement transactions accepted and stored.",
		}),
		ValidationRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_rejections_total",
			Help:      "Records rejected before saving, by reason.",
		}, []string{"reason"}),
		IntegrityWarnings: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "integrity_warnings",
			Help:      "Dangling player references found by the last standings computation.",
		}),
	}
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
