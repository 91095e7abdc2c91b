package usecase

import (
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Operations        *prometheus.CounterVec
	ChallengeDuration *prometheus.HistogramVec
	BusyRejections    prometheus.Counter
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biometric_operations_total",
				Help: "Biometric operations by normalized status.",
			},
			[]string{"operation", "status"},
		),
		ChallengeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "biometric_challenge_duration_seconds",
				Help:    "Time spent waiting on live biometric challenges.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		BusyRejections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "biometric_busy_rejections_total",
				Help: "Challenges rejected because another was outstanding.",
			},
		),
	}

	registry.MustRegister(m.Operations, m.ChallengeDuration, m.BusyRejections)
	return m
}

func (m *Metrics) observe(operation string, status domain.Status) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, string(status)).Inc()
	if status == domain.StatusBusy {
		m.BusyRejections.Inc()
	}
}

func (m *Metrics) observeChallenge(operation string, started time.Time) {
	if m == nil {
		return
	}
	m.ChallengeDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
