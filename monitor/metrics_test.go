package monitor

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, "success"},
		{302, "success"},
		{400, "explicit_error"},
		{404, "explicit_error"},
		{403, "policy_error"},
		{429, "policy_error"},
		{500, "implicit_error"},
		{100, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyStatus(tt.status), "status %d", tt.status)
	}
}

func TestRecordRequest(t *testing.T) {
	counter := httpRequestsTotal.WithLabelValues("POST", "/test/record", "404", "explicit_error")
	before := testutil.ToFloat64(counter)

	RecordRequest("POST", "/test/record", 404, 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordUpstreamCall(t *testing.T) {
	counter := upstreamCallsTotal.WithLabelValues("unsplash", "not_found_error")
	before := testutil.ToFloat64(counter)

	RecordUpstreamCall("unsplash", "not_found_error")
	RecordUpstreamCall("unsplash", "not_found_error")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestConcurrentGauge(t *testing.T) {
	before := testutil.ToFloat64(concurrentRequests)
	IncrementConcurrent()
	assert.Equal(t, before+1, testutil.ToFloat64(concurrentRequests))
	DecrementConcurrent()
	assert.Equal(t, before, testutil.ToFloat64(concurrentRequests))
}

func TestHandlerServesMetrics(t *testing.T) {
	RecordUpstreamCall("placeholder", OutcomeSuccess)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "image_api_upstream_calls_total")
}

func TestGetRuntimeStats(t *testing.T) {
	stats := GetRuntimeStats()
	assert.Greater(t, stats.Goroutines, 0)
}
