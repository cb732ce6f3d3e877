package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "task_scheduler"

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	registry *prometheus.Registry

	Proposals         *prometheus.CounterVec
	FallbackReasons   *prometheus.CounterVec
	UnassignedTasks   prometheus.Counter
	CalendarFallbacks *prometheus.CounterVec
	LLMRequests       *prometheus.CounterVec
	LLMLatency        *prometheus.HistogramVec
	WebhookUpdates    *prometheus.CounterVec
}

// NewMetrics registers every instrument on a fresh registry, alongside the Go
// runtime and process collectors.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Proposals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposals_total",
			Help:      "Schedule proposals by source (generative or deterministic) and scope.",
		}, []string{"source", "scope"}),
		FallbackReasons: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposal_fallbacks_total",
			Help:      "Reasons a generated proposal was replaced by the deterministic one.",
		}, []string{"reason"}),
		UnassignedTasks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unassigned_tasks_total",
			Help:      "Tasks that did not fit any free slot.",
		}),
		CalendarFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_fallbacks_total",
			Help:      "Times the default working window replaced calendar free slots.",
		}, []string{"reason"}),
		LLMRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "LLM provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		LLMLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_ms",
			Help:      "LLM provider latency in milliseconds, retries included.",
			Buckets:   []float64{250, 500, 1000, 2000, 4000, 8000, 16000, 32000},
		}, []string{"provider"}),
		WebhookUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_updates_total",
			Help:      "Telegram webhook requests by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveProposal counts one delivered proposal.
func (m *Metrics) ObserveProposal(source string, weekScope bool, unassigned int) {
	scope := "day"
	if weekScope {
		scope = "week"
	}
	m.Proposals.WithLabelValues(source, scope).Inc()
	if unassigned > 0 {
		m.UnassignedTasks.Add(float64(unassigned))
	}
}

// ObserveFallback counts each reason behind one fallback.
func (m *Metrics) ObserveFallback(reasons ...string) {
	for _, r := range reasons {
		m.FallbackReasons.WithLabelValues(r).Inc()
	}
}

// ObserveCalendarFallback counts one switch to the default working window.
func (m *Metrics) ObserveCalendarFallback(reason string) {
	m.CalendarFallbacks.WithLabelValues(reason).Inc()
}

// ObserveLLMRequest records one provider attempt chain.
func (m *Metrics) ObserveLLMRequest(provider string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.LLMRequests.WithLabelValues(provider, outcome).Inc()
	m.LLMLatency.WithLabelValues(provider).Observe(float64(elapsed.Milliseconds()))
}

// ObserveWebhook counts one webhook request outcome.
func (m *Metrics) ObserveWebhook(outcome string) {
	m.WebhookUpdates.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
