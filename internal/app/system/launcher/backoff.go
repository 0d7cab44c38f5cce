// internal/app/system/launcher/backoff.go
package launcher

import (
	"math/rand"
	"time"
)

// Backoff maps a completed attempt number (1-based) to the delay before the
// next attempt.
type Backoff func(attempt int) time.Duration

// FixedBackoff returns the same delay after every attempt.
func FixedBackoff(d time.Duration) Backoff {
	return func(int) time.Duration { return d }
}

// ExponentialBackoff doubles the delay per attempt, capped at max.
// base, 2*base, 4*base, ...
func ExponentialBackoff(base, max time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := base
		for i := 1; i < attempt; i++ {
			d *= 2
			if d >= max {
				return max
			}
		}
		if d > max {
			return max
		}
		return d
	}
}

// JitteredBackoff wraps next, adding up to frac (0..1) of the delay as
// random jitter so that simultaneously restarted instances do not thunder.
func JitteredBackoff(next Backoff, frac float64) Backoff {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return func(attempt int) time.Duration {
		d := next(attempt)
		if d <= 0 || frac == 0 {
			return d
		}
		return d + time.Duration(rand.Int63n(int64(float64(d)*frac)+1))
	}
}
