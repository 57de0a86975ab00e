package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	charsetpkg "golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// Client is an upstream GET client with retries, rate limiting and a circuit breaker.
type Client struct {
	baseURL            string
	client             *http.Client
	defaultHeaders     map[string]string
	defaultQueryParams map[string]string
	backoff            *BackoffConfig
	limiter            *rate.Limiter
	breaker            *gobreaker.CircuitBreaker
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect bool
	// DefaultHeaders are sent with every request
	DefaultHeaders map[string]string
	// DefaultQueryParams are sent with every request, typically API keys
	DefaultQueryParams  map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// Backoff is the retry policy, nil disables retries
	Backoff *BackoffConfig
	// RequestsPerSecond limits outgoing requests, zero disables the limiter
	RequestsPerSecond float64
	Burst             int
	// CircuitBreaker enables a circuit breaker around every attempt when not nil
	CircuitBreaker *CircuitBreakerConfig
	Logger         HTTPLogger
}

// CircuitBreakerConfig represents the circuit breaker settings of a client.
type CircuitBreakerConfig struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// ConsecutiveFailures opens the circuit, defaults to 5
	ConsecutiveFailures uint32
}

const fallbackContentType = "application/json"

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	hc := &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		defaultHeaders:     opts.DefaultHeaders,
		defaultQueryParams: opts.DefaultQueryParams,
		backoff:            opts.Backoff,
		logger:             opts.Logger,
	}

	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		hc.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	if opts.CircuitBreaker != nil {
		hc.breaker = newCircuitBreaker(*opts.CircuitBreaker)
	}

	return hc
}

func newCircuitBreaker(cfg CircuitBreakerConfig) *gobreaker.CircuitBreaker {
	failures := cfg.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
	})
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest sends a single GET and decodes the body into successResp or errorResp by status.
func (hc *Client) doRequest(ctx context.Context, path string, queryParams map[string]string, successResp any, errorResp any) (any, any, int, error) {
	requestURL := hc.buildURL(path)
	if query := hc.buildQueryString(queryParams); query != "" {
		requestURL += "?" + query
	}
	logURL := redactURL(requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, 0, err
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}

	if hc.logger != nil {
		hc.logger.LogRequest(logURL)
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(logURL, 0, time.Since(start).Milliseconds(), err)
		}
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}
	latency := time.Since(start).Milliseconds()

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = fallbackContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(logURL, resp.StatusCode, latency)
		}
		if successResp != nil {
			if err = hc.unmarshalResponse(respBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, err
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode}
	if hc.logger != nil {
		hc.logger.LogResponseError(logURL, resp.StatusCode, latency, statusErr)
	}

	if errorResp != nil {
		if err = hc.unmarshalResponse(respBytes, respContentType, errorResp); err != nil {
			return nil, nil, resp.StatusCode, statusErr
		}
		return nil, errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

// StatusError is returned when the server answers with a non 2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(hc.baseURL, "/") + path
}

// buildQueryString merges default and request query parameters and encodes them
func (hc *Client) buildQueryString(params map[string]string) string {
	if len(params) == 0 && len(hc.defaultQueryParams) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range hc.defaultQueryParams {
		values.Set(key, value)
	}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

// redactURL drops the query string, which may carry API keys, before logging
func redactURL(rawURL string) string {
	if idx := strings.Index(rawURL, "?"); idx >= 0 {
		return rawURL[:idx]
	}
	return rawURL
}
