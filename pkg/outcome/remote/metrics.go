package remote

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts remote calls by final outcome kind: "success", "cancel",
// or the fault name.
type Metrics struct {
	calls *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "walletcore",
			Subsystem: "remote",
			Name:      "calls_total",
			Help:      "Remote calls by outcome kind.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.calls)
	}
	return m
}
