package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type payload struct {
	Name string `json:"name"`
}

type apiError struct {
	Message string `json:"message"`
}

func TestRequestExecuteDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected default Accept header, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "New York travel" {
			t.Errorf("expected encoded query, got %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("expected default query param, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		DefaultHeaders:     map[string]string{"Accept": "application/json"},
		DefaultQueryParams: map[string]string{"key": "secret"},
	})

	success, errResp, status, err := client.Request().
		WithPath("search").
		WithQueryParams(map[string]string{"q": "New York travel"}).
		WithSuccessResp(&payload{}).
		Execute()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK || errResp != nil {
		t.Fatalf("unexpected status %d / error response %v", status, errResp)
	}
	if got := success.(*payload).Name; got != "ok" {
		t.Fatalf("expected name ok, got %q", got)
	}
}

func TestRequestExecuteRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"recovered"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Backoff: &BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond},
	})

	success, _, _, err := client.Request().WithSuccessResp(&payload{}).Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := success.(*payload).Name; got != "recovered" {
		t.Fatalf("expected recovered, got %q", got)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", calls.Load())
	}
}

func TestRequestExecuteDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"city not found"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Backoff: &BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond},
	})

	_, errResp, status, err := client.Request().
		WithSuccessResp(&payload{}).
		WithErrorResp(&apiError{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 status error, got %v", err)
	}
	if status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", status)
	}
	if got := errResp.(*apiError).Message; got != "city not found" {
		t.Fatalf("unexpected error message %q", got)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single call, got %d", calls.Load())
	}
}

func TestCircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		CircuitBreaker: &CircuitBreakerConfig{Name: "test", ConsecutiveFailures: 2, Timeout: time.Minute},
	})

	for i := 0; i < 2; i++ {
		if _, _, _, err := client.Request().Execute(); err == nil {
			t.Fatalf("expected failure on call %d", i)
		}
	}

	_, _, _, err := client.Request().Execute()
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected breaker to short-circuit the third call, got %d calls", calls.Load())
	}
}

func TestRequestExecuteHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Backoff: &BackoffConfig{MaxRetries: 5, InitialInterval: time.Second},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, _, err := client.Request().WithContext(ctx).Execute()
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestBackoffDelayIsCapped(t *testing.T) {
	b := &BackoffConfig{InitialInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond}
	if got := b.delay(0); got != 100*time.Millisecond {
		t.Fatalf("unexpected first delay %v", got)
	}
	if got := b.delay(1); got != 200*time.Millisecond {
		t.Fatalf("unexpected second delay %v", got)
	}
	if got := b.delay(4); got != 300*time.Millisecond {
		t.Fatalf("expected capped delay, got %v", got)
	}
}
