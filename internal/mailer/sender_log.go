package mailer

import (
	"context"

	"github.com/MKhiriev/go-post-keeper/internal/config"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
)

// logSender writes messages to the log instead of delivering them.
type logSender struct {
	logger *logger.Logger
}

// NewLogSender creates a Sender that only logs messages.
func NewLogSender(logger *logger.Logger) Sender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("smtp is not configured, email logged instead of sent")
	return nil
}

// NewSender picks the SMTP sender when cfg.Host is set and the logging
// sender otherwise.
func NewSender(cfg config.Mail, logger *logger.Logger) (Sender, error) {
	if cfg.Host == "" {
		logger.Warn().Msg("MAIL_HOST is empty, emails will only be logged")
		return NewLogSender(logger), nil
	}

	return NewSMTPSender(cfg)
}
