package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the player core and
// its transport layer.
type Metrics struct {
	registry              *prometheus.Registry
	SeeksTotal            prometheus.Counter
	AngleSwitchesTotal    prometheus.Counter
	DriftCorrectionsTotal prometheus.Counter
	HandleErrorsTotal     prometheus.Counter
	PlayRejectionsTotal   prometheus.Counter
	MetadataTimeoutsTotal prometheus.Counter
	ConnectedClients      prometheus.Gauge
	ErroredHandles        prometheus.Gauge
}

// New creates and registers the player metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		SeeksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "player_seeks_total",
			Help: "Total number of explicit seek operations applied to the ensemble",
		}),
		AngleSwitchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "player_angle_switches_total",
			Help: "Total number of completed main-angle switches",
		}),
		DriftCorrectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "player_drift_corrections_total",
			Help: "Total number of thumbnail positions forcibly rewritten by drift correction",
		}),
		HandleErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "player_handle_errors_total",
			Help: "Total number of media handle load errors",
		}),
		PlayRejectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "player_play_rejections_total",
			Help: "Total number of per-handle play requests rejected by the host environment",
		}),
		MetadataTimeoutsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "player_metadata_timeouts_total",
			Help: "Total number of handles marked ready after the metadata wait expired",
		}),
		ConnectedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "player_connected_clients",
			Help: "Number of websocket clients currently attached to the viewer",
		}),
		ErroredHandles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "player_errored_handles",
			Help: "Number of media handles currently in the errored state",
		}),
	}

	registry.MustRegister(
		m.SeeksTotal,
		m.AngleSwitchesTotal,
		m.DriftCorrectionsTotal,
		m.HandleErrorsTotal,
		m.PlayRejectionsTotal,
		m.MetadataTimeoutsTotal,
		m.ConnectedClients,
		m.ErroredHandles,
	)

	return m
}

// HTTPHandler exposes the registry in Prometheus text format.
func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
