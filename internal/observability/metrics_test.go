package observability

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics("test")

	m.ObserveProposal("deterministic", true, 2)
	m.ObserveProposal("generative", false, 0)
	m.ObserveFallback("missing_time_line", "missing_task_name")
	m.ObserveCalendarFallback("error")
	m.ObserveLLMRequest("gemini", nil, 120*time.Millisecond)
	m.ObserveLLMRequest("gemini", errors.New("boom"), time.Second)
	m.ObserveWebhook("accepted")

	if got := testutil.ToFloat64(m.Proposals.WithLabelValues("deterministic", "week")); got != 1 {
		t.Errorf("deterministic week proposals = %v", got)
	}
	if got := testutil.ToFloat64(m.UnassignedTasks); got != 2 {
		t.Errorf("unassigned = %v", got)
	}
	if got := testutil.ToFloat64(m.FallbackReasons.WithLabelValues("missing_task_name")); got != 1 {
		t.Errorf("fallback reason = %v", got)
	}
	if got := testutil.ToFloat64(m.LLMRequests.WithLabelValues("gemini", "error")); got != 1 {
		t.Errorf("llm errors = %v", got)
	}
	if got := testutil.ToFloat64(m.CalendarFallbacks.WithLabelValues("error")); got != 1 {
		t.Errorf("calendar fallbacks = %v", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("test")
	m.ObserveWebhook("rejected")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `test_webhook_updates_total{outcome="rejected"} 1`) {
		t.Errorf("expected webhook counter in exposition, got:\n%s", body)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("expected runtime collector output")
	}
}
