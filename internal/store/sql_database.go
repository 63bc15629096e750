package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/migrations"
	"github.com/sethvargo/go-retry"
)

// Read queries are retried this many extra times when the failure is
// classified as [Retryable].
const (
	readRetries      = 2
	readRetryBackoff = 50 * time.Millisecond
)

// ErrorClassificator decides whether a failed database operation may be
// attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is the shared PostgreSQL handle injected into every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs fn and repeats it with exponential backoff while the
// returned error is classified as [Retryable].
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	if db.errorClassificator == nil {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(readRetries, retry.NewExponential(readRetryBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("retrying database operation")
			return retry.RetryableError(err)
		}
		return err
	})
}
