package notification

import (
	"context"
	"fmt"
	"time"

	"obleafusion/internal/infrastructure/email"
	"obleafusion/internal/infrastructure/metrics"
	"obleafusion/internal/shared/logger"
)

// Gateway hands composed messages to the mail transport and reports the
// outcome as a boolean. Transport failures never propagate to the caller.
type Gateway struct {
	transport email.Transport
	metrics   *metrics.Metrics
	logger    logger.Interface
}

func NewGateway(transport email.Transport, m *metrics.Metrics, logger logger.Interface) *Gateway {
	return &Gateway{
		transport: transport,
		metrics:   m,
		logger:    logger,
	}
}

// Send makes exactly one delivery attempt. It returns true when the
// transport accepted the message and false on any error or panic.
func (g *Gateway) Send(ctx context.Context, msg *email.Message) (delivered bool) {
	if msg == nil {
		g.logger.Errorw("refusing to dispatch nil notification")
		return false
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			g.logger.Errorw("email transport panicked",
				"kind", msg.Kind,
				"to", msg.To,
				"panic", fmt.Sprintf("%v", r),
			)
			delivered = false
		}
		g.metrics.ObserveDispatch(msg.Kind, delivered, time.Since(start))
	}()

	if err := g.transport.Send(ctx, msg); err != nil {
		g.logger.Errorw("failed to send notification email",
			"kind", msg.Kind,
			"to", msg.To,
			"error", err,
		)
		return false
	}

	g.logger.Infow("notification email sent",
		"kind", msg.Kind,
		"to", msg.To,
	)
	return true
}
