package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBase     = 25 * time.Millisecond
)

// retryPolicy bounds how often a transient failure is tried. attempts counts
// the first try, so 3 means at most two retries.
type retryPolicy struct {
	attempts uint64
	base     time.Duration
}

func (p retryPolicy) backoff() retry.Backoff {
	var retries uint64
	if p.attempts > 1 {
		retries = p.attempts - 1
	}
	return retry.WithMaxRetries(retries, retry.WithJitterPercent(10, retry.NewExponential(p.base)))
}

// withRetry runs fn until it succeeds, fails with an error the dialect's
// classifier calls non-retryable, the attempts run out or ctx ends. The last
// error is returned unwrapped.
func (db *DB) withRetry(ctx context.Context, funcName string, fn func(ctx context.Context) error) error {
	attempt := 0
	return retry.Do(ctx, db.retry.backoff(), func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", funcName).
			Int("attempt", attempt).
			Msg("transient database error, retrying")
		return retry.RetryableError(err)
	})
}
