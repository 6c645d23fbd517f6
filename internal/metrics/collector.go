package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/curatorlabs/topicroute/router"
)

// Collector counts routing outcomes. It implements
// router.DecisionObserver and is safe for concurrent use.
type Collector struct {
	decisionsTotal         *prometheus.CounterVec
	unknownDirectivesTotal prometheus.Counter
}

// NewCollector creates a Collector registered on reg. Passing nil
// registers on the default prometheus registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		decisionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "topicroute",
				Name:      "decisions_total",
				Help:      "Routing decisions by chosen model and reason.",
			},
			[]string{"model", "reason"},
		),
		unknownDirectivesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "topicroute",
				Name:      "unknown_directives_total",
				Help:      "Explicit directives that named no configured model.",
			},
		),
	}
}

// ObserveDecision records one completed routing decision.
func (c *Collector) ObserveDecision(modelID string, reason router.Reason) {
	c.decisionsTotal.WithLabelValues(modelID, string(reason)).Inc()
}

// ObserveUnknownDirective records a rejected directive.
func (c *Collector) ObserveUnknownDirective() {
	c.unknownDirectivesTotal.Inc()
}
