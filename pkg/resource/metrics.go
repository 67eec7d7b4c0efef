package resource

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times requests per resource path.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hadj_admin",
			Subsystem: "resource",
			Name:      "requests_total",
			Help:      "Requests sent to the CMS backend, by resource, method and status code.",
		}, []string{"resource", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hadj_admin",
			Subsystem: "resource",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests sent to the CMS backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "method"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register resource metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(resource, method, code string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(resource, method, code).Inc()
	m.duration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}
