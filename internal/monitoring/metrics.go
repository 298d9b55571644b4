package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spacesedan/sentiscope/internal/models"
)

const NAMESPACE = "sentiscope"

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	ReportsBuilt      *prometheus.CounterVec
	EmptySubmissions  prometheus.Counter
	UnknownLanguage   prometheus.Counter
	ProfanityDetected prometheus.Counter
	BuildDuration     prometheus.Histogram

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	Ready               prometheus.Gauge
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{registry: registry}
	initReportMetrics(m, promauto.With(registry))
	initHTTPMetrics(m, promauto.With(registry))
	return m
}

func initReportMetrics(m *Metrics, factory promauto.Factory) {
	m.ReportsBuilt = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: NAMESPACE,
		Name:      "reports_built_total",
		Help:      "Reports built from non-empty text, by final label",
	}, []string{"label"})

	m.EmptySubmissions = factory.NewCounter(prometheus.CounterOpts{
		Namespace: NAMESPACE,
		Name:      "empty_submissions_total",
		Help:      "Submissions that were blank after trimming",
	})

	m.UnknownLanguage = factory.NewCounter(prometheus.CounterOpts{
		Namespace: NAMESPACE,
		Name:      "unknown_language_total",
		Help:      "Reports where language detection fell back to unknown",
	})

	m.ProfanityDetected = factory.NewCounter(prometheus.CounterOpts{
		Namespace: NAMESPACE,
		Name:      "profanity_detected_total",
		Help:      "Reports whose text contained profanity",
	})

	m.BuildDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: NAMESPACE,
		Name:      "report_build_duration_seconds",
		Help:      "Time to run every analyzer and assemble a report",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	})
}

func initHTTPMetrics(m *Metrics, factory promauto.Factory) {
	m.HTTPRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: NAMESPACE,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	m.HTTPRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: NAMESPACE,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	m.Ready = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: NAMESPACE,
		Name:      "ready",
		Help:      "1 once the analyzers passed the readiness probe",
	})
}

// ObserveReport records the outcome of one ReportBuilder call.
func (m *Metrics) ObserveReport(report models.AnalysisReport, elapsed time.Duration) {
	if report.IsEmpty() {
		m.EmptySubmissions.Inc()
		return
	}

	m.ReportsBuilt.WithLabelValues(string(report.FinalLabel)).Inc()
	m.BuildDuration.Observe(elapsed.Seconds())
	if report.Language == models.UNKNOWN_LANGUAGE {
		m.UnknownLanguage.Inc()
	}
	if report.ContainsProfanity {
		m.ProfanityDetected.Inc()
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) SetReady(ready bool) {
	if ready {
		m.Ready.Set(1)
		return
	}
	m.Ready.Set(0)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the exposition format for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
