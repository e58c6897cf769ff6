// Package metrics exposes Prometheus counters for the advisory core.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors incremented by the orchestrator.
type Metrics struct {
	registry *prometheus.Registry

	Turns             *prometheus.CounterVec
	TreeSteps         *prometheus.CounterVec
	FormAnswers       *prometheus.CounterVec
	GeneratorFailures prometheus.Counter
	PersistenceDrops  prometheus.Counter
}

// New creates a Metrics set on its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		Turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finapp_turns_total",
			Help: "Conversation turns by routing kind and advisor category.",
		}, []string{"kind", "category"}),
		TreeSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finapp_tree_steps_total",
			Help: "Decision tree steps by goal.",
		}, []string{"goal"}),
		FormAnswers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finapp_form_answers_total",
			Help: "Intake form answers by validation result.",
		}, []string{"result"}),
		GeneratorFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "finapp_generator_failures_total",
			Help: "Advice generator calls that degraded to the apology reply.",
		}),
		PersistenceDrops: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "finapp_persistence_drops_total",
			Help: "Persistence writes that failed and were swallowed.",
		}),
	}
	registry.MustRegister(m.Turns, m.TreeSteps, m.FormAnswers, m.GeneratorFailures, m.PersistenceDrops)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
