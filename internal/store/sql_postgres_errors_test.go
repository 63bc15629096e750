package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"wrapped retryable", fmt.Errorf("query: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"invalid text", &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, NonRetryable},
		{"undefined table", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.Empty(t, postgresError(errors.New("boom")))
}

func TestClassifyPgError_QueryCanceledIsFinal(t *testing.T) {
	// 57014 shares the operator intervention class with 57P03.
	assert.Equal(t, NonRetryable, ClassifyPgError(&pgconn.PgError{Code: pgerrcode.QueryCanceled}))
	assert.Equal(t, Retryable, ClassifyPgError(&pgconn.PgError{Code: pgerrcode.CannotConnectNow}))
}
