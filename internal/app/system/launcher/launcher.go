// Package launcher starts the HTTP server with bounded retries.
//
// A launch attempt is the bind-and-start step of the server (the part that
// fails for environmental reasons: a lingering listener on the port, a
// privileged port, a half-initialized transport). Failures are classified so
// the launcher only re-attempts errors that can actually clear up on their
// own; a permission error on attempt one will fail on attempt three too.
//
// The delay between attempts comes from an injectable Backoff, and waiting
// itself goes through an injectable Sleep, so tests run deterministically
// with a fake clock.
package launcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Defaults used when the corresponding Launcher field is zero.
const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 5 * time.Second
)

// StartFunc attempts to start the server once. It returns nil once the
// server is up (listener bound and serving started), or the bind/start error.
type StartFunc func(ctx context.Context) error

// SleepFunc waits for d or until ctx is done, returning ctx.Err() in the
// latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Launcher retries a StartFunc a bounded number of times.
// The zero value is not usable; construct with New.
type Launcher struct {
	// MaxAttempts is the total number of launch attempts (not re-tries);
	// 0 means DefaultMaxAttempts.
	MaxAttempts int

	// Backoff yields the delay before the next attempt; nil means a fixed
	// DefaultDelay.
	Backoff Backoff

	// Sleep performs the inter-attempt wait; nil means a real clock.
	Sleep SleepFunc

	Log *zap.Logger
}

// New returns a Launcher with default policy (3 attempts, fixed 5s delay).
func New(logger *zap.Logger) *Launcher {
	return &Launcher{Log: logger}
}

// Run invokes start until it succeeds, a non-retryable error occurs, the
// context is canceled, or attempts are exhausted.
//
// On success Run returns nil immediately. The final error is never
// suppressed: after the last failed attempt it is returned wrapped, with no
// trailing delay. Each failure is logged with its attempt number and
// classification.
func (l *Launcher) Run(ctx context.Context, start StartFunc) error {
	attempts := l.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	backoff := l.Backoff
	if backoff == nil {
		backoff = FixedBackoff(DefaultDelay)
	}
	sleep := l.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = start(ctx)
		if err == nil {
			return nil
		}

		kind := Classify(err)
		l.Log.Warn("launch attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.String("kind", kind.String()),
			zap.Error(err))

		if !kind.Retryable() {
			l.Log.Error("launch failed with non-retryable error",
				zap.String("kind", kind.String()),
				zap.Error(err))
			return fmt.Errorf("launch: %w", err)
		}

		if attempt < attempts {
			delay := backoff(attempt)
			l.Log.Info("retrying launch", zap.Duration("delay", delay))
			if serr := sleep(ctx, delay); serr != nil {
				return fmt.Errorf("launch canceled while waiting to retry: %w", serr)
			}
		}
	}

	l.Log.Error("launch failed, attempts exhausted",
		zap.Int("attempts", attempts),
		zap.Error(err))
	return fmt.Errorf("launch failed after %d attempts: %w", attempts, err)
}

// sleepContext blocks for d on a real clock, honoring ctx cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
