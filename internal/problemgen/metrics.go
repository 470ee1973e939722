package problemgen

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation paths recorded on the generated counter.
const (
	PathAccepted = "accepted"
	PathFallback = "fallback"
)

// Rejection reasons recorded on the rejected counter.
const (
	reasonInvalid       = "invalid"
	reasonQuizDuplicate = "quiz_duplicate"
	reasonDuplicate     = "duplicate"
	reasonDistribution  = "distribution"
	reasonModeCollapse  = "mode_collapse"
)

// Metrics records generator outcomes in Prometheus. A nil *Metrics is a
// valid no-op collector.
type Metrics struct {
	generated *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	attempts  *prometheus.HistogramVec
}

// NewMetrics creates the generator metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		generated: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathrush_questions_generated_total",
				Help: "Questions emitted by the generator, by path (accepted or fallback).",
			},
			[]string{"type", "difficulty", "path"},
		),
		rejected: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathrush_candidates_rejected_total",
				Help: "Candidates rejected by the acceptance filter, by reason.",
			},
			[]string{"type", "difficulty", "reason"},
		),
		attempts: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mathrush_generation_attempts",
				Help:    "Candidates drawn per emitted question.",
				Buckets: []float64{1, 2, 3, 5, 10, 20, 30, 40},
			},
			[]string{"type", "difficulty"},
		),
	}
}

// Generated returns the counter for questions emitted on path for the tier.
func (m *Metrics) Generated(t QuizType, d Difficulty, path string) prometheus.Counter {
	return m.generated.WithLabelValues(string(t), string(d), path)
}

// Rejected returns the counter for candidates rejected for reason.
func (m *Metrics) Rejected(t QuizType, d Difficulty, reason string) prometheus.Counter {
	return m.rejected.WithLabelValues(string(t), string(d), reason)
}

func (m *Metrics) recordGenerated(t QuizType, d Difficulty, path string, attempts int) {
	if m == nil {
		return
	}
	m.Generated(t, d, path).Inc()
	m.attempts.WithLabelValues(string(t), string(d)).Observe(float64(attempts))
}

func (m *Metrics) recordRejected(t QuizType, d Difficulty, reason string) {
	if m == nil {
		return
	}
	m.Rejected(t, d, reason).Inc()
}
