package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Predictions counts orchestrator outcomes. It satisfies the observer the
// gpa service reports to.
type Predictions struct {
	total    *prometheus.CounterVec
	clamped  prometheus.Counter
	duration prometheus.Histogram
}

func NewPredictions(registerer prometheus.Registerer, namespace string) *Predictions {
	p := &Predictions{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Subsystem: "gpa",
			Name:      "predictions_total",
			Help:      "Prediction requests by outcome.",
		}, []string{"outcome"}),
		clamped: prometheus.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Subsystem: "gpa",
			Name:      "clamped_total",
			Help:      "Model outputs that fell outside the GPA scale.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Subsystem: "gpa",
			Name:      "prediction_duration_seconds",
			Help:      "Time spent validating and evaluating one request.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}),
	}

	registerer.MustRegister(p.total, p.clamped, p.duration)

	return p
}

func (p *Predictions) ObservePrediction(outcome string, clamped bool, elapsed time.Duration) {
	p.total.WithLabelValues(outcome).Inc()

	if clamped {
		p.clamped.Inc()
	}

	p.duration.Observe(elapsed.Seconds())
}
