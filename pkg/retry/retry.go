// Package retry re-invokes a failing operation with exponential, jittered backoff.
//
// Every failure is retried until the budget runs out unless the policy carries a
// Retryable predicate. On exhaustion the last error is returned as is.
package retry

import (
	"context"
	"itemlist/pkg/backoff"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Default policy values.
const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = time.Second
	DefaultMaxDelay   = 10 * time.Second
)

// Operation is the unit of work retried by Do. The same value is invoked on every attempt.
type Operation[T any] func(ctx context.Context) (T, error)

// Sleeper waits between attempts.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }

// Policy configures one call to Do. The zero value makes a single attempt.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	BaseDelay  time.Duration
	// MaxDelay caps every computed delay.
	MaxDelay time.Duration
	// Jitter is the exclusive upper bound of the uniform random delay added per retry.
	Jitter time.Duration
	// Retryable reports whether err may be retried. Nil retries everything.
	Retryable func(err error) bool
	// Sleeper defaults to a timer that honours ctx.
	Sleeper Sleeper
}

// DefaultPolicy returns 3 retries, 1s base delay, 10s cap and up to 1s of jitter.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		MaxDelay:   DefaultMaxDelay,
		Jitter:     backoff.DefaultJitter,
	}
}

// Attempts is the total number of times the operation may run.
func (p Policy) Attempts() int {
	return max(p.MaxRetries, 0) + 1
}

// Delay computes the wait after the failed attempt (0-indexed).
func (p Policy) Delay(attempt int) time.Duration {
	return backoff.ExponentialJitter(p.BaseDelay, p.MaxDelay, attempt, p.Jitter)
}

// Do runs op until it succeeds or the policy is exhausted. On success the operation's
// value is returned unmodified; on failure the error of the final attempt is returned.
// If ctx is done while waiting between attempts, the last error is returned.
func Do[T any](ctx context.Context, p Policy, op Operation[T]) (T, error) {
	var (
		zero    T
		lastErr error
	)

	maxRetries := p.Attempts() - 1
	sleeper := p.Sleeper
	if sleeper == nil {
		sleeper = timerSleeper{}
	}

	for attempt := 0; attempt <= maxRetries; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt == maxRetries {
			return zero, lastErr
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return zero, lastErr
		}

		delay := p.Delay(attempt)
		logger(ctx).Warn().
			Err(err).
			Int("attempt", attempt+1).
			Int("max_attempts", p.Attempts()).
			Dur("delay", delay).
			Msgf("request failed (attempt %d/%d), retrying in %s", attempt+1, maxRetries+1, delay)

		if err := sleeper.Sleep(ctx, delay); err != nil {
			return zero, lastErr
		}
	}

	return zero, lastErr
}

// DoErr is Do for operations that only report an error.
func DoErr(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	_, err := Do(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// logger prefers the context logger and falls back to the global one.
func logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
