// SPDX-License-Identifier: MIT

package operator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors updated by memo caches.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Expansions       prometheus.Counter
	SlowExpansions   prometheus.Counter
	BudgetExceeded   prometheus.Counter
	ResidueHits      prometheus.Counter
	ResidueMisses    prometheus.Counter
	ExpansionSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{
			Namespace: "lvlbits",
			Subsystem: "operator",
			Name:      name,
			Help:      help,
		})
	}

	return &Metrics{
		Expansions:     counter("expansions_total", "Numerical expansions computed."),
		SlowExpansions: counter("slow_expansions_total", "Expansions slower than the configured threshold."),
		BudgetExceeded: counter("expansion_budget_exceeded_total", "Expansions aborted by the time budget."),
		ResidueHits:    counter("residue_cache_hits_total", "Modulo queries answered from a memo cache."),
		ResidueMisses:  counter("residue_cache_misses_total", "Modulo queries computed analytically."),
		ExpansionSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lvlbits",
			Subsystem: "operator",
			Name:      "expansion_seconds",
			Help:      "Wall time of numerical expansions.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

func (m *Metrics) residue(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.ResidueHits.Inc()
	} else {
		m.ResidueMisses.Inc()
	}
}

func (m *Metrics) expansion(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.BudgetExceeded.Inc()
		return
	}
	m.Expansions.Inc()
	m.ExpansionSeconds.Observe(elapsed.Seconds())
}

func (m *Metrics) slow() {
	if m == nil {
		return
	}
	m.SlowExpansions.Inc()
}
