package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")

	testCases := []struct {
		name         string
		cfg          RetryConfig
		failures     int
		failWith     error
		noRetry      []error
		wantErr      error
		wantAttempts int
	}{
		{
			name:         "success on first attempt",
			cfg:          RetryConfig{MaxAttempts: 3},
			wantAttempts: 1,
		},
		{
			name:         "success after failures",
			cfg:          RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
			failures:     2,
			failWith:     errTemporary,
			wantAttempts: 3,
		},
		{
			name:         "all attempts fail",
			cfg:          RetryConfig{MaxAttempts: 4},
			failures:     10,
			failWith:     errTemporary,
			wantErr:      errTemporary,
			wantAttempts: 4,
		},
		{
			name:         "non retryable error stops immediately",
			cfg:          RetryConfig{MaxAttempts: 5},
			failures:     10,
			failWith:     errFatal,
			noRetry:      []error{errFatal},
			wantErr:      errFatal,
			wantAttempts: 1,
		},
		{
			name: "RetryIf rejects error",
			cfg: RetryConfig{MaxAttempts: 5, RetryIf: func(err error) bool {
				return errors.Is(err, errTemporary)
			}},
			failures:     10,
			failWith:     errFatal,
			wantErr:      errFatal,
			wantAttempts: 1,
		},
		{
			name: "RetryIf accepts error",
			cfg: RetryConfig{MaxAttempts: 5, RetryIf: func(err error) bool {
				return errors.Is(err, errTemporary)
			}},
			failures:     10,
			failWith:     errTemporary,
			wantErr:      errTemporary,
			wantAttempts: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attempts := 0
			err := Retry(context.Background(), tc.cfg, func() error {
				attempts++
				if attempts <= tc.failures {
					return tc.failWith
				}
				return nil
			}, tc.noRetry...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantAttempts, attempts)
		})
	}
}

func TestRetry_FixedDelay(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: 20 * time.Millisecond, Multiplier: 1}

	var calls []time.Time
	start := time.Now()
	err := Retry(context.Background(), cfg, func() error {
		calls = append(calls, time.Now())
		return errors.New("down")
	})

	assert.Error(t, err)
	assert.Len(t, calls, 3)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	for i := 1; i < len(calls); i++ {
		assert.GreaterOrEqual(t, calls[i].Sub(calls[i-1]), 20*time.Millisecond)
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		attempts++
		cancel()
		return errors.New("down")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}
