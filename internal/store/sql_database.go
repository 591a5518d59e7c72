package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	defaultMaxRetries     = 3
	defaultRetryBaseDelay = 100 * time.Millisecond
)

// DB wraps *sql.DB with the error classifier and retry policy shared by all
// repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	maxRetries     uint64
	retryBaseDelay time.Duration
}

// NewDB wraps an open connection pool. Read queries that fail with a
// retryable error are retried up to three times with Fibonacci backoff.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
		maxRetries:         defaultMaxRetries,
		retryBaseDelay:     defaultRetryBaseDelay,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs fn and re-runs it while it fails with an error the
// classifier marks as [Retryable]. Only idempotent reads go through here.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.maxRetries, retry.NewFibonacci(db.retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "*DB.withRetry").
				Msg("retryable database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
