package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obleafusion/internal/application/notification/dto"
	"obleafusion/internal/infrastructure/email"
	apperrors "obleafusion/internal/shared/errors"
)

func newTestService(transport email.Transport) *Service {
	log := newRecordingLogger()
	return NewService(newTestComposer(log), NewGateway(transport, nil, log), log)
}

func TestService_SendBooking(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		transport := &fakeTransport{}
		delivered, err := newTestService(transport).SendBooking(context.Background(), scenarioBooking())

		require.NoError(t, err)
		assert.True(t, delivered)
		require.Equal(t, 1, transport.calls())
		assert.Equal(t, "reservas@obleafusion.com", transport.sent[0].To)
	})

	t.Run("transport failure is soft", func(t *testing.T) {
		transport := &fakeTransport{err: errors.New("connection refused")}
		delivered, err := newTestService(transport).SendBooking(context.Background(), scenarioBooking())

		require.NoError(t, err)
		assert.False(t, delivered)
	})

	t.Run("missing email rejected before dispatch", func(t *testing.T) {
		transport := &fakeTransport{}
		req := scenarioBooking()
		req.Email = "   "

		delivered, err := newTestService(transport).SendBooking(context.Background(), req)

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.False(t, delivered)
		assert.Equal(t, 0, transport.calls())
	})

	t.Run("nil request", func(t *testing.T) {
		_, err := newTestService(&fakeTransport{}).SendBooking(context.Background(), nil)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("cancelled request still dispatches", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var sawErr error
		transport := email.TransportFunc(func(ctx context.Context, _ *email.Message) error {
			sawErr = ctx.Err()
			return nil
		})

		delivered, err := newTestService(transport).SendBooking(ctx, scenarioBooking())
		require.NoError(t, err)
		assert.True(t, delivered)
		assert.NoError(t, sawErr)
	})
}

func TestService_SendContact(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		transport := &fakeTransport{}
		delivered, err := newTestService(transport).SendContact(context.Background(), &dto.ContactRequest{
			Name: "Luis", Email: "luis@x.com", ReferralSource: "Radio / TV", Language: "en",
		})

		require.NoError(t, err)
		assert.True(t, delivered)
		require.Equal(t, 1, transport.calls())
		assert.Contains(t, transport.sent[0].HTMLBody, "Radio / TV")
	})

	t.Run("missing name rejected", func(t *testing.T) {
		transport := &fakeTransport{}
		_, err := newTestService(transport).SendContact(context.Background(), &dto.ContactRequest{Email: "luis@x.com"})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Contains(t, appErr.Details, "name is required")
		assert.Equal(t, 0, transport.calls())
	})
}
