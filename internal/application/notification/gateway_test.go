package notification

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obleafusion/internal/infrastructure/email"
	"obleafusion/internal/infrastructure/metrics"
)

func TestGateway_Send(t *testing.T) {
	msg := func() *email.Message {
		return &email.Message{Kind: KindBooking, To: "owner@obleafusion.com", Subject: "s"}
	}

	t.Run("success", func(t *testing.T) {
		log := newRecordingLogger()
		transport := &fakeTransport{}
		g := NewGateway(transport, nil, log)

		assert.True(t, g.Send(context.Background(), msg()))
		assert.Equal(t, 1, transport.calls())
		assert.Equal(t, 1, log.count("info"))
		assert.Equal(t, 0, log.count("error"))
	})

	t.Run("transport error", func(t *testing.T) {
		log := newRecordingLogger()
		transport := &fakeTransport{err: errors.New("smtp: 535 authentication failed")}
		g := NewGateway(transport, nil, log)

		var delivered bool
		require.NotPanics(t, func() { delivered = g.Send(context.Background(), msg()) })
		assert.False(t, delivered)
		assert.Equal(t, 1, transport.calls(), "no retries")
		assert.Equal(t, 1, log.count("error"))
	})

	t.Run("transport panic", func(t *testing.T) {
		log := newRecordingLogger()
		g := NewGateway(&fakeTransport{panic: "nil dialer"}, nil, log)

		var delivered bool
		require.NotPanics(t, func() { delivered = g.Send(context.Background(), msg()) })
		assert.False(t, delivered)
		assert.Equal(t, 1, log.count("error"))
	})

	t.Run("nil message", func(t *testing.T) {
		log := newRecordingLogger()
		transport := &fakeTransport{}
		g := NewGateway(transport, nil, log)

		assert.False(t, g.Send(context.Background(), nil))
		assert.Equal(t, 0, transport.calls())
		assert.Equal(t, 1, log.count("error"))
	})
}

func TestGateway_RecordsMetrics(t *testing.T) {
	m := metrics.New()
	ok := NewGateway(&fakeTransport{}, m, newRecordingLogger())
	failing := NewGateway(&fakeTransport{err: errors.New("down")}, m, newRecordingLogger())

	ok.Send(context.Background(), &email.Message{Kind: KindBooking, To: "a@x.com"})
	failing.Send(context.Background(), &email.Message{Kind: KindContact, To: "a@x.com"})
	failing.Send(context.Background(), &email.Message{Kind: KindContact, To: "a@x.com"})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `obleafusion_notifications_dispatched_total{kind="booking",outcome="delivered"} 1`)
	assert.Contains(t, body, `obleafusion_notifications_dispatched_total{kind="contact",outcome="failed"} 2`)
}
