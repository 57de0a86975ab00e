package http

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned when the circuit breaker rejects a request
var ErrCircuitOpen = errors.New("circuit breaker open")

// BackoffConfig controls exponential backoff between attempts.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// NewBackoffConfig creates a backoff configuration with default values
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// delay returns the wait before the given retry attempt, starting at zero
func (b *BackoffConfig) delay(attempt int) time.Duration {
	delay := b.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
	if b.MaxInterval > 0 && delay > b.MaxInterval {
		delay = b.MaxInterval
	}
	return delay
}

type attemptResult struct {
	successResp any
	errorResp   any
	status      int
}

// doRequestWithBackoff executes the request with rate limiting, circuit breaker and retries.
// Only transport errors, 429 and 5xx answers are retried.
func (hc *Client) doRequestWithBackoff(ctx context.Context, path string, queryParams map[string]string, successResp any, errorResp any) (any, any, int, error) {
	backoff := hc.backoff
	if ctx == nil {
		ctx = context.Background()
	}

	attempt := 0
	for {
		if hc.limiter != nil {
			if err := hc.limiter.Wait(ctx); err != nil {
				return nil, nil, 0, fmt.Errorf("rate limit wait canceled: %w", err)
			}
		}

		result, err := hc.executeAttempt(ctx, path, queryParams, successResp, errorResp)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, nil, 0, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		if err == nil || !isRetryable(result.status, err) || backoff == nil || attempt >= backoff.MaxRetries {
			return result.successResp, result.errorResp, result.status, err
		}

		delay := backoff.delay(attempt)
		attempt++
		if hc.logger != nil {
			hc.logger.LogRequestRetry(hc.buildURL(path), result.status, delay.Milliseconds(), err, attempt, backoff.MaxRetries)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, result.status, ctx.Err()
		case <-timer.C:
		}
	}
}

// executeAttempt runs one request, through the circuit breaker when configured.
// Client errors (4xx) do not count as breaker failures.
func (hc *Client) executeAttempt(ctx context.Context, path string, queryParams map[string]string, successResp any, errorResp any) (*attemptResult, error) {
	var requestErr error
	run := func() (interface{}, error) {
		success, errResp, status, err := hc.doRequest(ctx, path, queryParams, successResp, errorResp)
		requestErr = err
		result := &attemptResult{successResp: success, errorResp: errResp, status: status}
		if err != nil && isRetryable(status, err) {
			return result, err
		}
		return result, nil
	}

	if hc.breaker == nil {
		out, _ := run()
		return out.(*attemptResult), requestErr
	}

	out, err := hc.breaker.Execute(run)
	if out == nil {
		return &attemptResult{}, err
	}
	return out.(*attemptResult), requestErr
}

func isRetryable(status int, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if status == 0 {
		return true
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
