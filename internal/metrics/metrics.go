// Package metrics exposes ranking runs as Prometheus metrics. Each Recorder
// owns its registry so tests and repeated runs never collide on the global one.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/linkrank/pagerank"
)

// Recorder collects linkrank metrics. Its methods match the pagerank hook
// signatures so they can be passed straight to WithOnIteration/WithOnRanked.
type Recorder struct {
	reg *prometheus.Registry

	Runs       prometheus.Counter
	Iterations prometheus.Counter
	Loads      *prometheus.CounterVec
	Duration   prometheus.Histogram
	Delta      prometheus.Gauge
	Nodes      prometheus.Gauge
	Edges      prometheus.Gauge
	Dangling   prometheus.Gauge
	Converged  prometheus.Gauge
}

// NewRecorder registers every linkrank metric on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkrank_runs_total",
			Help: "Total number of completed ranking runs.",
		}),
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkrank_iterations_total",
			Help: "Total number of power-iteration passes across all runs.",
		}),
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkrank_loads_total",
			Help: "Edge-list loads, labelled by status.",
		}, []string{"status"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "linkrank_rank_duration_ms",
			Help:    "Wall time of a ranking run in milliseconds.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 10000},
		}),
		Delta: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkrank_last_delta",
			Help: "L1 change of the most recent power-iteration pass.",
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkrank_nodes",
			Help: "Nodes in the most recently ranked graph.",
		}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkrank_edges",
			Help: "Links in the most recently ranked graph, duplicates included.",
		}),
		Dangling: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkrank_dangling_nodes",
			Help: "Nodes without outgoing links in the most recently ranked graph.",
		}),
		Converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkrank_converged",
			Help: "1 if the most recent run reached the tolerance, 0 otherwise.",
		}),
	}
	r.reg.MustRegister(r.Runs, r.Iterations, r.Loads, r.Duration,
		r.Delta, r.Nodes, r.Edges, r.Dangling, r.Converged)

	return r
}

// OnIteration records one power-iteration pass.
func (r *Recorder) OnIteration(_ int, delta float64) {
	r.Iterations.Inc()
	r.Delta.Set(delta)
}

// OnRanked records a completed run.
func (r *Recorder) OnRanked(s pagerank.Stats) {
	r.Runs.Inc()
	r.Duration.Observe(float64(s.Elapsed.Microseconds()) / 1000)
	r.Nodes.Set(float64(s.Nodes))
	r.Edges.Set(float64(s.Edges))
	r.Dangling.Set(float64(s.Dangling))
	if s.Converged {
		r.Converged.Set(1)
	} else {
		r.Converged.Set(0)
	}
}

// ObserveLoad counts an edge-list load as "ok" or "error".
func (r *Recorder) ObserveLoad(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.Loads.WithLabelValues(status).Inc()
}

// Options returns the engine hooks that feed r.
func (r *Recorder) Options() []pagerank.Option {
	return []pagerank.Option{
		pagerank.WithOnIteration(r.OnIteration),
		pagerank.WithOnRanked(r.OnRanked),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Handler serves r's registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
