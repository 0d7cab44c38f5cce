// Package queue bounds how many requests are handled at once.
//
// The deployment configuration carries a concurrency limit; hosted
// deployments additionally enable queueing, where requests over the limit
// wait for a slot instead of being turned away. Local runs without queueing
// shed excess load with 503 so a stuck handler is visible immediately.
package queue

import (
	"net/http"
	"time"
)

// DefaultWait is how long a queued request waits for a slot before giving up.
const DefaultWait = 30 * time.Second

// Limiter is a concurrency gate for HTTP handlers.
// It is safe for concurrent use.
type Limiter struct {
	slots chan struct{}
	queue bool
	wait  time.Duration
}

// New creates a Limiter allowing limit concurrent requests. When queue is
// true, excess requests wait up to DefaultWait for a slot; otherwise they
// are rejected immediately. limit <= 0 disables limiting.
func New(limit int, queue bool) *Limiter {
	l := &Limiter{queue: queue, wait: DefaultWait}
	if limit > 0 {
		l.slots = make(chan struct{}, limit)
	}
	return l
}

// Middleware wraps next with the concurrency gate.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if l.slots == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.acquire(r) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "server is busy", http.StatusServiceUnavailable)
			return
		}
		defer l.release()
		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) acquire(r *http.Request) bool {
	select {
	case l.slots <- struct{}{}:
		return true
	default:
	}

	if !l.queue {
		return false
	}

	t := time.NewTimer(l.wait)
	defer t.Stop()
	select {
	case l.slots <- struct{}{}:
		return true
	case <-r.Context().Done():
		return false
	case <-t.C:
		return false
	}
}

func (l *Limiter) release() {
	<-l.slots
}
