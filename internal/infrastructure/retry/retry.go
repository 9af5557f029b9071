// Package retry re-runs inventory fetches with capped exponential backoff.
package retry

import (
	"context"
	"math/rand/v2"
	"time"
)

// Config describes one retry policy. The zero value makes a single attempt.
type Config struct {
	// MaxAttempts counts the first call.
	MaxAttempts int

	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// JitterFactor adds up to this fraction of each delay at random.
	JitterFactor float64

	// RetryIf reports whether err deserves another attempt. Nil retries everything.
	RetryIf func(error) bool

	// OnRetry runs before each backoff sleep with the number of the attempt that failed.
	OnRetry func(attempt int, err error)
}

// SourceConfig is the policy for inventory sources. Every attempt shares the
// per-source timeout, so backoff stays short.
var SourceConfig = Config{
	MaxAttempts:  2,
	InitialDelay: 50 * time.Millisecond,
	MaxDelay:     400 * time.Millisecond,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// DoWithResult calls fn until it succeeds, returns an error RetryIf rejects, or
// the attempts run out. It returns ctx.Err() as soon as ctx is done, otherwise
// the last result and error.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	attempts := max(cfg.MaxAttempts, 1)

	var (
		result T
		err    error
	)
	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		result, err = fn()
		if err == nil || attempt == attempts || !cfg.retryable(err) {
			return result, err
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}

		timer := time.NewTimer(cfg.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}
	}
}

func (c Config) retryable(err error) bool {
	return c.RetryIf == nil || c.RetryIf(err)
}

// backoff is the sleep after the given failed attempt: InitialDelay grown by
// Multiplier per earlier attempt, plus jitter, capped at MaxDelay.
func (c Config) backoff(attempt int) time.Duration {
	delay := float64(c.InitialDelay)
	for i := 1; i < attempt; i++ {
		delay *= c.Multiplier
	}
	delay += rand.Float64() * delay * c.JitterFactor

	sleep := time.Duration(delay)
	if c.MaxDelay > 0 && sleep > c.MaxDelay {
		sleep = c.MaxDelay
	}
	return sleep
}

// WithRetryIf returns a copy of c using fn as its predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of c allowing n attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithOnRetry returns a copy of c calling fn between attempts.
func (c Config) WithOnRetry(fn func(attempt int, err error)) Config {
	c.OnRetry = fn
	return c
}
