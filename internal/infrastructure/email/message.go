package email

import (
	"context"
	"errors"
)

var (
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrNoRecipient               = errors.New("email message has no recipient")
)

// Message is a fully composed notification ready for delivery.
type Message struct {
	// Kind labels the notification in logs and metrics.
	Kind     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Transport delivers a composed message. Implementations make a single
// delivery attempt and report the outcome.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, msg *Message) error

func (f TransportFunc) Send(ctx context.Context, msg *Message) error {
	return f(ctx, msg)
}
