// SPDX-License-Identifier: MIT

// Package metrics exposes solver measurements as Prometheus collectors.
//
// Recorder implements stn.Observer over a private registry, so several
// recorders can coexist (one per process, per test, ...).
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/tempus/stn"
)

const namespace = "tempus"

// Result label values for PropagationsTotal.
const (
	ResultOK            = "ok"
	ResultNegativeCycle = "negative_cycle"
	ResultError         = "error"
)

// Recorder holds every solver metric.
type Recorder struct {
	PropagationsTotal  *prometheus.CounterVec
	PropagateDuration  prometheus.Histogram
	RegistrationsTotal prometheus.Counter
	TimePoints         prometheus.Gauge
	DistanceArcs       prometheus.Gauge

	registry *prometheus.Registry
}

var _ stn.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		PropagationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "propagations_total",
				Help:      "Total number of constraint propagations by result",
			},
			[]string{"result"},
		),
		PropagateDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "propagate_duration_seconds",
				Help:      "Floyd-Warshall propagation duration in seconds",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
			},
		),
		RegistrationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Total number of distance graphs registered",
			},
		),
		TimePoints: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "time_points",
				Help:      "Time points in the most recently registered network",
			},
		),
		DistanceArcs: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "distance_arcs",
				Help:      "Distance-graph arcs (self-loops included) in the most recently registered network",
			},
		),
		registry: reg,
	}
}

// ObserveRegister implements stn.Observer.
func (r *Recorder) ObserveRegister(nodes, arcs int) {
	r.RegistrationsTotal.Inc()
	r.TimePoints.Set(float64(nodes))
	r.DistanceArcs.Set(float64(arcs))
}

// ObservePropagate implements stn.Observer.
func (r *Recorder) ObservePropagate(elapsed time.Duration, err error) {
	r.PropagateDuration.Observe(elapsed.Seconds())
	r.PropagationsTotal.WithLabelValues(resultOf(err)).Inc()
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, stn.ErrNegativeCycle):
		return ResultNegativeCycle
	default:
		return ResultError
	}
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes the current metrics to path in the text exposition
// format read by node_exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
