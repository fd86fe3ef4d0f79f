package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "sqlgate"

type Histogram interface {
	Observe(float64)
}

type Counter interface {
	Inc()
	Add(float64)
}

type Gauge interface {
	Set(float64)
	Inc()
	Dec()
}

type CounterVec interface {
	With(labels ...string) Counter
}

type HistogramVec interface {
	With(labels ...string) Histogram
}

type NoopStat struct{}

func (n NoopStat) Observe(float64) {}
func (n NoopStat) Set(float64)     {}
func (n NoopStat) Inc()            {}
func (n NoopStat) Dec()            {}
func (n NoopStat) Add(float64)     {}

type noopCounterVec struct{}
type noopHistogramVec struct{}

func (n noopCounterVec) With(labels ...string) Counter     { return NoopStat{} }
func (n noopHistogramVec) With(labels ...string) Histogram { return NoopStat{} }

type prometheusCounterVec struct {
	vec *prometheus.CounterVec
}

func (p *prometheusCounterVec) With(labelValues ...string) Counter {
	return p.vec.WithLabelValues(labelValues...)
}

type prometheusHistogramVec struct {
	vec *prometheus.HistogramVec
}

func (p *prometheusHistogramVec) With(labelValues ...string) Histogram {
	return p.vec.WithLabelValues(labelValues...)
}

// Registry creates metrics. A nil registry hands out no-op stats, so callers
// never need to check whether metrics are enabled.
type Registry struct {
	reg *prometheus.Registry
}

// New returns a Registry; when enabled is false every metric is a no-op.
func New(enabled bool) *Registry {
	if !enabled {
		return &Registry{}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector())

	log.Info().Msg("Prometheus metrics enabled")
	return &Registry{reg: reg}
}

// Noop returns a Registry whose metrics record nothing.
func Noop() *Registry { return &Registry{} }

func (r *Registry) Enabled() bool { return r != nil && r.reg != nil }

func (r *Registry) NewCounter(name, help string) Counter {
	if !r.Enabled() {
		return NoopStat{}
	}
	ret := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	r.reg.MustRegister(ret)
	return ret
}

func (r *Registry) NewGauge(name, help string) Gauge {
	if !r.Enabled() {
		return NoopStat{}
	}
	ret := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	r.reg.MustRegister(ret)
	return ret
}

func (r *Registry) NewHistogram(name, help string, buckets []float64) Histogram {
	if !r.Enabled() {
		return NoopStat{}
	}
	ret := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	})
	r.reg.MustRegister(ret)
	return ret
}

func (r *Registry) NewCounterVec(name, help string, labels []string) CounterVec {
	if !r.Enabled() {
		return noopCounterVec{}
	}
	ret := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
	r.reg.MustRegister(ret)
	return &prometheusCounterVec{vec: ret}
}

func (r *Registry) NewHistogramVec(name, help string, labels []string, buckets []float64) HistogramVec {
	if !r.Enabled() {
		return noopHistogramVec{}
	}
	ret := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)
	r.reg.MustRegister(ret)
	return &prometheusHistogramVec{vec: ret}
}

// Handler returns the exposition handler, or nil when metrics are disabled.
func (r *Registry) Handler() http.Handler {
	if !r.Enabled() {
		return nil
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
