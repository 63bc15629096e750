package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/mailer"
)

// sendTimeout bounds a single delivery attempt.
const sendTimeout = 30 * time.Second

// MailWorker delivers queued emails in the background. Delivery failures
// are logged and never retried.
type MailWorker struct {
	queue  chan mailer.Message
	sender mailer.Sender
	logger *logger.Logger
}

// NewMailWorker creates a worker whose queue holds up to queueSize messages.
func NewMailWorker(sender mailer.Sender, queueSize int, logger *logger.Logger) *MailWorker {
	if queueSize < 1 {
		queueSize = 1
	}

	return &MailWorker{
		queue:  make(chan mailer.Message, queueSize),
		sender: sender,
		logger: logger,
	}
}

// Enqueue schedules msg for delivery without blocking. It returns false and
// drops the message when the queue is full.
func (w *MailWorker) Enqueue(ctx context.Context, msg mailer.Message) bool {
	select {
	case w.queue <- msg:
		return true
	default:
		logger.FromContext(ctx).Error().
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("mail queue is full, message dropped")
		return false
	}
}

// Run delivers messages until ctx is cancelled, then flushes whatever is
// still queued.
func (w *MailWorker) Run(ctx context.Context) {
	w.logger.Info().Msg("mail worker started")
	defer w.logger.Info().Msg("mail worker stopped")

	for {
		select {
		case msg := <-w.queue:
			w.send(ctx, msg)
		case <-ctx.Done():
			w.flush()
			return
		}
	}
}

func (w *MailWorker) flush() {
	for {
		select {
		case msg := <-w.queue:
			w.send(context.Background(), msg)
		default:
			return
		}
	}
}

func (w *MailWorker) send(ctx context.Context, msg mailer.Message) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	if err := w.sender.Send(sendCtx, msg); err != nil {
		w.logger.Err(err).
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("failed to send email")
		return
	}

	w.logger.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
}
