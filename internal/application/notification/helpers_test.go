package notification

import (
	"context"
	"fmt"
	"sync"

	"obleafusion/internal/application/notification/dto"
	"obleafusion/internal/infrastructure/email"
	"obleafusion/internal/shared/config"
	"obleafusion/internal/shared/logger"
	"obleafusion/internal/shared/services/markdown"
)

// recordingLogger keeps every entry for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level string
	msg   string
	kv    []any
}

func newRecordingLogger() *recordingLogger { return &recordingLogger{} }

func (l *recordingLogger) record(level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, kv: kv})
}

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

func (l *recordingLogger) Debug(msg string, args ...any)          { l.record("debug", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)           { l.record("info", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)           { l.record("warn", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any)          { l.record("error", msg, args) }
func (l *recordingLogger) With(args ...any) logger.Interface      { return l }
func (l *recordingLogger) Named(name string) logger.Interface     { return l }
func (l *recordingLogger) Debugw(msg string, keysAndValues ...any) { l.record("debug", msg, keysAndValues) }
func (l *recordingLogger) Infow(msg string, keysAndValues ...any)  { l.record("info", msg, keysAndValues) }
func (l *recordingLogger) Warnw(msg string, keysAndValues ...any)  { l.record("warn", msg, keysAndValues) }
func (l *recordingLogger) Errorw(msg string, keysAndValues ...any) { l.record("error", msg, keysAndValues) }

// fakeTransport records sends and answers with the configured error.
type fakeTransport struct {
	mu    sync.Mutex
	sent  []*email.Message
	err   error
	panic any
}

func (f *fakeTransport) Send(_ context.Context, msg *email.Message) error {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	if f.panic != nil {
		panic(f.panic)
	}
	return f.err
}

func (f *fakeTransport) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestComposer(log logger.Interface) *Composer {
	return NewComposer(
		config.EmailConfig{BookingTo: "reservas@obleafusion.com", ContactTo: "hola@obleafusion.com"},
		config.BrandConfig{Name: "ObleaFusion", OwnerName: "Equipo ObleaFusion"},
		markdown.NewMarkdownService(),
		log,
	)
}

// scenarioBooking is the reference booking used across tests.
func scenarioBooking() *dto.BookingRequest {
	return &dto.BookingRequest{
		Name:        "Ana",
		Email:       "ana@x.com",
		Phone:       "555",
		EventType:   "Baby Shower",
		Date:        "2025-06-01",
		Time:        "14:00",
		Duration:    "2",
		Desserts:    []string{"Flan"},
		ServiceType: "catering",
		Location:    "Park",
		Language:    "es",
	}
}

type panickingMarkdown struct{}

func (panickingMarkdown) ToHTML(string) (string, error)          { panic("boom") }
func (panickingMarkdown) Sanitize(s string) string               { return s }
func (panickingMarkdown) ToHTMLSanitized(string) (string, error) { panic("boom") }

type failingMarkdown struct{}

func (failingMarkdown) ToHTML(string) (string, error)          { return "", fmt.Errorf("renderer down") }
func (failingMarkdown) Sanitize(s string) string               { return s }
func (failingMarkdown) ToHTMLSanitized(string) (string, error) { return "", fmt.Errorf("renderer down") }
