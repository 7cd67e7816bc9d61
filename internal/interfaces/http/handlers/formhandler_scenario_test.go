package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obleafusion/internal/application/notification"
	"obleafusion/internal/infrastructure/email"
	"obleafusion/internal/infrastructure/i18n"
	"obleafusion/internal/interfaces/http/handlers/testutil"
	"obleafusion/internal/shared/config"
	"obleafusion/internal/shared/services/markdown"
)

// recordingTransport captures every message and fails with err when set.
type recordingTransport struct {
	mu   sync.Mutex
	sent []*email.Message
	err  error
}

func (r *recordingTransport) Send(_ context.Context, msg *email.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.err
}

func (r *recordingTransport) messages() []*email.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*email.Message(nil), r.sent...)
}

func newScenarioHandler(transport email.Transport) *FormHandler {
	log := testutil.NewMockLogger()
	composer := notification.NewComposer(
		config.EmailConfig{BookingTo: "reservas@obleafusion.com", ContactTo: "hola@obleafusion.com"},
		config.BrandConfig{},
		markdown.NewMarkdownService(),
		log,
	)
	gateway := notification.NewGateway(transport, nil, log)
	return NewFormHandler(notification.NewService(composer, gateway, log), log)
}

func scenarioBookingBody() map[string]any {
	return map[string]any{
		"name":        "Ana",
		"email":       "ana@x.com",
		"phone":       "555",
		"eventType":   "Baby Shower",
		"date":        "2025-06-01",
		"time":        "14:00",
		"duration":    "2",
		"desserts":    []string{"Flan"},
		"serviceType": "catering",
		"location":    "Park",
		"language":    "es",
	}
}

func TestScenario_BookingDelivered(t *testing.T) {
	transport := &recordingTransport{}
	handler := newScenarioHandler(transport)

	c, w := testutil.NewTestContext(http.MethodPost, "/email/booking", scenarioBookingBody())
	handler.SubmitBooking(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Correo de reserva enviado correctamente."}`, w.Body.String())

	sent := transport.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "reservas@obleafusion.com", sent[0].To)
	assert.Equal(t, "ana@x.com", sent[0].ReplyTo)
	assert.Contains(t, sent[0].TextBody, "domingo, 1 de junio de 2025")
}

func TestScenario_BookingTransportFails(t *testing.T) {
	transport := &recordingTransport{err: stderrors.New("smtp: connection refused")}
	handler := newScenarioHandler(transport)

	c, w := testutil.NewTestContext(http.MethodPost, "/email/booking", scenarioBookingBody())
	handler.SubmitBooking(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.FormResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, i18n.MsgBookingReceived(i18n.ES), resp.Message)
	assert.Equal(t, "Email notification could not be sent", resp.Warning)
	assert.Len(t, transport.messages(), 1)
}

func TestScenario_BookingMissingEmail(t *testing.T) {
	transport := &recordingTransport{}
	handler := newScenarioHandler(transport)

	body := scenarioBookingBody()
	delete(body, "email")

	c, w := testutil.NewTestContext(http.MethodPost, "/email/booking", body)
	handler.SubmitBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"success":false,"message":"Faltan datos requeridos (nombre y email son obligatorios)."}`,
		w.Body.String())
	assert.Empty(t, transport.messages())
}

func TestScenario_ContactReferralLabel(t *testing.T) {
	tests := []struct {
		lang      string
		wantLabel string
	}{
		{"es", "Radio / Televisión"},
		{"en", "Radio / TV"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			transport := &recordingTransport{}
			handler := newScenarioHandler(transport)

			body := map[string]any{
				"name":           "Luis",
				"email":          "luis@x.com",
				"referralSource": "Radio / TV",
				"message":        "Hola",
				"language":       tt.lang,
			}
			c, w := testutil.NewTestContext(http.MethodPost, "/email/contact", body)
			handler.SubmitContact(c)

			require.Equal(t, http.StatusOK, w.Code)
			sent := transport.messages()
			require.Len(t, sent, 1)
			assert.Equal(t, "hola@obleafusion.com", sent[0].To)
			assert.Contains(t, sent[0].TextBody, tt.wantLabel)
			assert.Contains(t, sent[0].HTMLBody, tt.wantLabel)
		})
	}
}
