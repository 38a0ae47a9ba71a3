package utils

import (
	"context"
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts int
	// InitialDelay == 0 означает повтор без паузы
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// Multiplier == 1 даёт фиксированную паузу, 0 - удвоение
	Multiplier float64
	// RetryIf ограничивает повторы конкретными ошибками; nil - повторять любые
	RetryIf func(err error) bool
}

// Retry вызывает fn, пока она не вернёт nil или не закончатся попытки.
// Ошибки из noRetry возвращаются сразу. Возвращается последняя ошибка fn.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error, noRetry ...error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier == 0 {
		cfg.Multiplier = 2.0
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}

	delay := cfg.InitialDelay

	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		if attempt == cfg.MaxAttempts || !retryable(cfg, err, noRetry) {
			return err
		}

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.Join(err, ctx.Err())
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			return errors.Join(err, ctx.Err())
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return err
}

func retryable(cfg RetryConfig, err error, noRetry []error) bool {
	for _, target := range noRetry {
		if errors.Is(err, target) {
			return false
		}
	}
	if cfg.RetryIf != nil {
		return cfg.RetryIf(err)
	}
	return true
}
