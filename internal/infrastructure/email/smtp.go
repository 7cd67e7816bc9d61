package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"obleafusion/internal/shared/config"
	"obleafusion/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPConfigFrom maps the application email settings onto the transport config.
func SMTPConfigFrom(cfg config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

type SMTPTransport struct {
	config SMTPConfig
	send   func(m ...*gomail.Message) error
}

func NewSMTPTransport(config SMTPConfig) *SMTPTransport {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPTransport{
		config: config,
		send:   dialer.DialAndSend,
	}
}

// NewTransport returns an SMTP transport, or a transport that always fails
// with ErrEmailServiceNotConfigured when no SMTP host is set.
func NewTransport(config SMTPConfig, log logger.Interface) Transport {
	if config.Host == "" {
		log.Warnw("email service not configured, smtp_host is empty")
		return &unconfiguredTransport{logger: log}
	}

	log.Infow("email service initialized",
		"host", config.Host,
		"port", config.Port,
		"from", config.FromAddress,
	)
	return NewSMTPTransport(config)
}

func (s *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	if msg == nil || msg.To == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := s.buildMessage(msg)

	// gomail has no context support; the dial is abandoned, not aborted, on cancel.
	done := make(chan error, 1)
	go func() {
		done <- s.send(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send email: %w", ctx.Err())
	}
}

func (s *SMTPTransport) buildMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)

	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}
	return m
}

type unconfiguredTransport struct {
	logger logger.Interface
}

func (u *unconfiguredTransport) Send(_ context.Context, msg *Message) error {
	to := ""
	if msg != nil {
		to = msg.To
	}
	u.logger.Warnw("email service not configured, cannot send notification", "to", to)
	return ErrEmailServiceNotConfigured
}
