package event

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "shop"
	metricsSubsystem = "event_dispatcher"
)

// Metrics 事件分派器的 Prometheus 指標
//
// nil *Metrics 是合法值，所有觀測方法都是 no-op。
type Metrics struct {
	notified *prometheus.CounterVec
	handled  *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

// NewMetrics 建立並註冊指標
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		notified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "events_notified_total",
			Help:      "Number of events passed to Notify, by event type.",
		}, []string{"event_type"}),
		handled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "handler_invocations_total",
			Help:      "Number of handler invocations, by event type.",
		}, []string{"event_type"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "handler_failures_total",
			Help:      "Number of handler invocations that returned an error, by event type.",
		}, []string{"event_type"}),
	}

	for _, c := range []prometheus.Collector{m.notified, m.handled, m.failed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeNotify(eventType string) {
	if m == nil {
		return
	}
	m.notified.WithLabelValues(eventType).Inc()
}

func (m *Metrics) observeHandled(eventType string) {
	if m == nil {
		return
	}
	m.handled.WithLabelValues(eventType).Inc()
}

func (m *Metrics) observeFailure(eventType string) {
	if m == nil {
		return
	}
	m.failed.WithLabelValues(eventType).Inc()
}
