// Package metrics exposes client-side Prometheus counters for backend calls,
// poll cycles and user-initiated mutations. A nil *Metrics is valid and
// records nothing.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "meetup_client"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds all collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	polls           *prometheus.CounterVec
	mutations       *prometheus.CounterVec
	notices         *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Backend requests by operation and outcome code.",
		}, []string{"operation", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Backend request latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poll_cycles_total",
			Help:      "Refresh cycles by view and result.",
		}, []string{"view", "result"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "User-initiated changes by kind and result.",
		}, []string{"kind", "result"}),
		notices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notices_total",
			Help:      "Transient notices shown by level.",
		}, []string{"level"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.polls,
		m.mutations,
		m.notices,
		collectors.NewGoCollector(),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one backend call. code is "ok" or an error code.
func (m *Metrics) ObserveRequest(operation, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, code).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObservePoll records one refresh cycle of a view.
func (m *Metrics) ObservePoll(view string, err error) {
	if m == nil {
		return
	}
	m.polls.WithLabelValues(view, result(err)).Inc()
}

// ObserveMutation records one create/update/delete/transition.
func (m *Metrics) ObserveMutation(kind string, err error) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(kind, result(err)).Inc()
}

// ObserveNotice records one transient notice.
func (m *Metrics) ObserveNotice(level string) {
	if m == nil {
		return
	}
	m.notices.WithLabelValues(level).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics listener started", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
