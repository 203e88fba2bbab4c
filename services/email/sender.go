package email

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers transactional mail (reservation confirmations and
// reminders). Implementations are expected to be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender is the default no-provider implementation: it records the mail in
// the application log instead of delivering it. Deployments with a real mail
// provider swap in their own Sender.
type LogSender struct {
	Logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{Logger: logger}
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.Logger.Info("email (log-only delivery)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
