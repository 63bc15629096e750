package mailer

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
