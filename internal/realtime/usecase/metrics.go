package usecase

import "github.com/prometheus/client_golang/prometheus"

// Metrics tracks live dashboard connections and change deliveries.
type Metrics struct {
	connections prometheus.Gauge
	messages    *prometheus.CounterVec
}

// NewMetrics registers the realtime metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "realtime_connections",
			Help: "Open dashboard websocket connections.",
		}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "realtime_messages_total",
			Help: "Change notifications by delivery outcome.",
		}, []string{"status"}),
	}
	reg.MustRegister(m.connections, m.messages)
	return m
}

func (m *Metrics) connected(delta float64) {
	if m == nil {
		return
	}
	m.connections.Add(delta)
}

func (m *Metrics) delivered(ok bool) {
	if m == nil {
		return
	}
	status := "sent"
	if !ok {
		status = "dropped"
	}
	m.messages.WithLabelValues(status).Inc()
}
