// Package retry provides the backoff wrapper shared by the ledger and
// notifier integrations.
package retry

import (
	"context"
	"time"
)

const (
	DefaultAttempts  = 4
	DefaultBaseDelay = 1 * time.Second
)

// Do runs op up to attempts times. The delay before retry k (0-indexed) is
// baseDelay * 2^k, no jitter. Every failure is retried the same way; there
// is no retryable/fatal classification, and the final attempt's error is the
// one returned. A started attempt always runs to completion: ctx is handed
// to op but the backoff sleeps are not interruptible.
func Do[T any](ctx context.Context, attempts int, baseDelay time.Duration, op func(context.Context) (T, error)) (T, error) {
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			t := time.NewTimer(baseDelay << (attempt - 1))
			<-t.C
		}

		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}

	var zero T
	return zero, lastErr
}
