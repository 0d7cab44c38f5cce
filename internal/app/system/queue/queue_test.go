package queue_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/govcodex/internal/app/system/queue"
)

func TestMiddleware_Unlimited(t *testing.T) {
	l := queue.New(0, false)

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestMiddleware_ShedsWhenFullWithoutQueue(t *testing.T) {
	l := queue.New(1, false)

	hold := make(chan struct{})
	entered := make(chan struct{})

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-hold
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/slow", nil))
	}()
	<-entered

	// Second request finds the only slot taken and must be shed.
	rec := httptest.NewRecorder()
	l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when shed")
	})).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	close(hold)
	wg.Wait()
}

func TestMiddleware_QueuedRequestGetsSlot(t *testing.T) {
	l := queue.New(1, true)

	hold := make(chan struct{})
	entered := make(chan struct{})

	slow := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-hold
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		slow.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/slow", nil))
	}()
	<-entered

	// Queued request blocks until the slot frees, then succeeds.
	done := make(chan int)
	go func() {
		rec := httptest.NewRecorder()
		l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		done <- rec.Code
	}()

	close(hold)
	if code := <-done; code != http.StatusOK {
		t.Errorf("queued request status: got %d, want 200", code)
	}
	wg.Wait()
}
