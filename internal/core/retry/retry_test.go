package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oguenfoude/bs/internal/core/retry"
	"github.com/stretchr/testify/assert"
)

func TestDo_FirstAttemptSucceeds(t *testing.T) {
	calls := 0
	v, err := retry.Do(context.Background(), 4, time.Millisecond,
		func(context.Context) (int, error) {
			calls++
			return 42, nil
		})

	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestDo_RecoversAfterFailures(t *testing.T) {
	calls := 0
	v, err := retry.Do(context.Background(), 4, time.Millisecond,
		func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("flaky")
			}
			return "ok", nil
		})

	assert.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAndReturnsLastError(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), 4, time.Millisecond,
		func(context.Context) (int, error) {
			calls++
			if calls == 4 {
				return 0, errors.New("final failure")
			}
			return 0, errors.New("earlier failure")
		})

	assert.Equal(t, 4, calls)
	assert.EqualError(t, err, "final failure")
}

func TestDo_ExponentialBackoff(t *testing.T) {
	base := 20 * time.Millisecond

	start := time.Now()
	_, err := retry.Do(context.Background(), 4, base,
		func(context.Context) (int, error) {
			return 0, errors.New("always")
		})
	elapsed := time.Since(start)

	assert.Error(t, err)
	// Delays: base, 2*base, 4*base between the 4 attempts.
	assert.GreaterOrEqual(t, elapsed, 7*base)
	assert.Less(t, elapsed, 20*base)
}

func TestDo_SingleAttemptNeverSleeps(t *testing.T) {
	start := time.Now()
	_, err := retry.Do(context.Background(), 1, time.Second,
		func(context.Context) (int, error) {
			return 0, errors.New("nope")
		})

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
