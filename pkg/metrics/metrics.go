package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa as métricas Prometheus da API
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Dashboards
	DashboardLoadsTotal    *prometheus.CounterVec
	DashboardLoadDuration  *prometheus.HistogramVec
	DashboardDiscardsTotal *prometheus.CounterVec

	// Tracking
	TrackingFailuresTotal *prometheus.CounterVec

	// Threads
	ThreadsCacheTotal *prometheus.CounterVec
}

// NewMetrics cria e registra as métricas no registry informado
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landing_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "landing_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DashboardLoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landing_dashboard_loads_total",
				Help: "Total number of dashboard loads by outcome",
			},
			[]string{"dashboard", "outcome"},
		),
		DashboardLoadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "landing_dashboard_load_duration_seconds",
				Help:    "Dashboard load duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30},
			},
			[]string{"dashboard"},
		),
		DashboardDiscardsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landing_dashboard_stale_discards_total",
				Help: "Total number of superseded dashboard loads whose result was discarded",
			},
			[]string{"dashboard"},
		),
		TrackingFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landing_tracking_failures_total",
				Help: "Total number of tracking events that could not be recorded",
			},
			[]string{"event"},
		),
		ThreadsCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landing_threads_insights_cache_total",
				Help: "Threads insights cache lookups by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DashboardLoadsTotal,
		m.DashboardLoadDuration,
		m.DashboardDiscardsTotal,
		m.TrackingFailuresTotal,
		m.ThreadsCacheTotal,
	)

	return m
}

// ObserveDashboardLoad registra o resultado e a duração de um carregamento de dashboard
func (m *Metrics) ObserveDashboardLoad(dashboard, outcome string, d time.Duration) {
	m.DashboardLoadsTotal.WithLabelValues(dashboard, outcome).Inc()
	m.DashboardLoadDuration.WithLabelValues(dashboard).Observe(d.Seconds())
}

func (m *Metrics) IncDashboardDiscarded(dashboard string) {
	m.DashboardDiscardsTotal.WithLabelValues(dashboard).Inc()
}

func (m *Metrics) IncTrackingFailure(event string) {
	m.TrackingFailuresTotal.WithLabelValues(event).Inc()
}

func (m *Metrics) IncThreadsCache(result string) {
	m.ThreadsCacheTotal.WithLabelValues(result).Inc()
}

// Handler expõe as métricas do registry no formato Prometheus
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Middleware contabiliza as requisições HTTP por método, rota e status
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			path := RouteLabel(r.URL.Path)
			m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// RouteLabel troca segmentos de identificador (UUID ou numérico) por ":id"
func RouteLabel(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if _, err := uuid.Parse(p); err == nil {
			parts[i] = ":id"
			continue
		}
		if _, err := strconv.Atoi(p); err == nil {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
