package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/jmertens/haulsched/core/metrics"
)

// PromSink records scheduling events in Prometheus metrics.
type PromSink struct {
	calls     *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	fleet     prometheus.Gauge
	board     prometheus.Gauge
	scheduled prometheus.Gauge
}

// NewPromSink registers scheduling metrics on the default Prometheus
// registerer. The metrics server is started separately on cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "oracle_calls_total",
		Help: "Total number of oracle consultations",
	}, []string{"vehicle_id", "included"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "oracle_call_latency_seconds",
		Help:    "Time spent waiting on the reasoning service per vehicle",
		Buckets: prometheus.DefBuckets,
	}, []string{"vehicle_id"})
	fleet := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_vehicles_total",
		Help: "Vehicles in the normalized fleet table for the last run",
	})
	board := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "board_jobs_total",
		Help: "Geolocated jobs on the board for the last run",
	})
	scheduled := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduled_vehicles_total",
		Help: "Vehicles with a recommendation in the last run",
	})

	if err := reg.Register(calls); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			calls = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	for _, g := range []*prometheus.Gauge{&fleet, &board, &scheduled} {
		if err := reg.Register(*g); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				*g = are.ExistingCollector.(prometheus.Gauge)
			} else {
				return nil, err
			}
		}
	}

	return &PromSink{calls: calls, latency: latency, fleet: fleet, board: board, scheduled: scheduled}, nil
}

// RecordOracleCall increments the call counter and observes the latency.
func (s *PromSink) RecordOracleCall(ev coremetrics.OracleCallEvent) error {
	s.calls.WithLabelValues(ev.VehicleID, strconv.FormatBool(ev.Included)).Inc()
	s.latency.WithLabelValues(ev.VehicleID).Observe(ev.Latency.Seconds())
	return nil
}

// RecordRunSummary sets the per-run gauges.
func (s *PromSink) RecordRunSummary(ev coremetrics.RunSummaryEvent) error {
	s.fleet.Set(float64(ev.Vehicles))
	s.board.Set(float64(ev.Jobs))
	s.scheduled.Set(float64(ev.Scheduled))
	return nil
}
