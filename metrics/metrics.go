// Package metrics exposes Prometheus metrics for the gold certificate backend.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Issuance outcome labels.
const (
	ResultSuccess           = "success"
	ResultSignerUnavailable = "signer_unavailable"
	ResultMalformed         = "malformed"
	ResultNetworkError      = "network_error"
	ResultRejected          = "rejected"
	ResultTimeout           = "timeout"
	ResultInconsistent      = "inconsistent"
	ResultAbandoned         = "abandoned"
)

// Issuance collects metrics of the issuance workflow.
// A nil *Issuance is valid and records nothing.
type Issuance struct {
	outcomes    *prometheus.CounterVec
	duration    prometheus.Histogram
	statusPolls prometheus.Histogram
}

// NewIssuance creates the issuance collectors and registers them with reg.
func NewIssuance(reg prometheus.Registerer, namespace string) *Issuance {
	m := &Issuance{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issuance_total",
			Help:      "Certificate issuances by outcome.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "issuance_duration_seconds",
			Help:      "Wall-clock time from request to outcome.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}),
		statusPolls: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "issuance_status_polls",
			Help:      "Pending-status queries per confirmation wait.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
	}
	reg.MustRegister(m.outcomes, m.duration, m.statusPolls)
	return m
}

// ObserveOutcome records the outcome of one issuance.
func (m *Issuance) ObserveOutcome(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(result).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// ObserveStatusPolls records how many status queries a confirmation wait made.
func (m *Issuance) ObserveStatusPolls(polls int) {
	if m == nil {
		return
	}
	m.statusPolls.Observe(float64(polls))
}

// MetricsServer serves the metrics registry over HTTP.
type MetricsServer struct {
	Registry *prometheus.Registry
	Issuance *Issuance

	srv *http.Server
}

// New creates a registry with Go and process collectors plus the issuance
// collectors, served on addr at /metrics.
func New(namespace, addr string) (*MetricsServer, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return &MetricsServer{
		Registry: reg,
		Issuance: NewIssuance(reg, namespace),
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Handler returns the HTTP handler serving the registry.
func (s *MetricsServer) Handler() http.Handler {
	return s.srv.Handler
}

func (s *MetricsServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
