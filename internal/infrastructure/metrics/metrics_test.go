package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveDispatch(t *testing.T) {
	m := New()

	m.ObserveDispatch("booking", true, 10*time.Millisecond)
	m.ObserveDispatch("booking", false, 10*time.Millisecond)
	m.ObserveDispatch("booking", false, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatched.WithLabelValues("booking", OutcomeDelivered)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dispatched.WithLabelValues("booking", OutcomeFailed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.dispatched.WithLabelValues("contact", OutcomeFailed)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDispatch("contact", true, time.Second)
		m.ObserveHTTP("/email/contact", http.MethodPost, 200, time.Second)
		m.ObserveRateLimited("/email/contact")
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveHTTP("/email/booking", http.MethodPost, 200, 5*time.Millisecond)
	m.ObserveRateLimited("/email/booking")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `obleafusion_http_requests_total{method="POST",route="/email/booking",status="200"} 1`)
	assert.Contains(t, body, `obleafusion_ratelimit_rejections_total{route="/email/booking"} 1`)
}
