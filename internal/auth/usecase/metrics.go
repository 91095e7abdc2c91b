package usecase

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	Logins *prometheus.CounterVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_logins_total",
				Help: "Login attempts by method and result.",
			},
			[]string{"method", "result"},
		),
	}
	registry.MustRegister(m.Logins)
	return m
}

func (m *Metrics) observe(method, result string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(method, result).Inc()
}
