// Package metrics exposes Prometheus instrumentation for the primality
// engine. A PrimalityMetrics value implements numtheory.Observer, so the
// counters advance at round and candidate boundaries without touching the
// core witness loop.
package metrics

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ZoeyR/rcrypt/numtheory"
)

// Round outcome label values.
const (
	OutcomePassed    = "passed"
	OutcomeComposite = "composite"
)

// Candidate verdict label values.
const (
	VerdictProbablyPrime = "probably_prime"
	VerdictComposite     = "composite"
)

// PrimalityMetrics counts Miller-Rabin rounds and candidate verdicts.
// All methods are safe for concurrent use.
type PrimalityMetrics struct {
	rounds     *prometheus.CounterVec
	candidates *prometheus.CounterVec
}

var _ numtheory.Observer = (*PrimalityMetrics)(nil)

// NewPrimalityMetrics creates the counters and registers them with reg.
// Passing prometheus.DefaultRegisterer wires them into the default registry.
func NewPrimalityMetrics(reg prometheus.Registerer) *PrimalityMetrics {
	m := &PrimalityMetrics{
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rcrypt",
			Name:      "primality_rounds_total",
			Help:      "Miller-Rabin rounds executed, by outcome.",
		}, []string{"outcome"}),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rcrypt",
			Name:      "primality_candidates_total",
			Help:      "Candidates tested for primality, by verdict.",
		}, []string{"verdict"}),
	}
	reg.MustRegister(m.rounds, m.candidates)
	return m
}

// RoundCompleted counts one Miller-Rabin round.
func (m *PrimalityMetrics) RoundCompleted(_ *big.Int, _ int, passed bool) {
	outcome := OutcomeComposite
	if passed {
		outcome = OutcomePassed
	}
	m.rounds.WithLabelValues(outcome).Inc()
}

// CandidateTested counts one candidate verdict.
func (m *PrimalityMetrics) CandidateTested(_ *big.Int, probablyPrime bool) {
	verdict := VerdictComposite
	if probablyPrime {
		verdict = VerdictProbablyPrime
	}
	m.candidates.WithLabelValues(verdict).Inc()
}
