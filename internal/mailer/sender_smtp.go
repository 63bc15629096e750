package mailer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-keeper/internal/config"
	"github.com/wneessen/go-mail"
)

// smtpSender delivers messages through an SMTP relay.
type smtpSender struct {
	client *mail.Client
	from   string
}

// NewSMTPSender creates a Sender for the relay described by cfg. SMTP
// authentication is only enabled when a username is configured.
func NewSMTPSender(cfg config.Mail) (Sender, error) {
	if err := mail.NewMsg().From(cfg.From); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSender, err)
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &smtpSender{client: client, from: cfg.From}, nil
}

// Send dials the relay and delivers msg.
func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSender, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return nil
}
