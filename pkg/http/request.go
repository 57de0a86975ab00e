package http

import (
	"context"
	"fmt"
)

// Request is a GET call against the client's base URL, built fluently.
type Request struct {
	client      *Client
	ctx         context.Context
	path        string
	queryParams map[string]string
	successResp any
	errorResp   any
}

// NewHttpClientRequest creates a request bound to client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		client: client,
		ctx:    context.Background(),
		path:   "/",
	}
}

// WithContext sets the context used to cancel the request and its retries.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

// WithPath sets the path, relative to the client's base URL.
func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

// WithQueryParams sets query parameters, merged over the client's defaults.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.queryParams = params
	return r
}

// WithSuccessResp sets the value a 2xx body is decoded into.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.successResp = successResp
	return r
}

// WithErrorResp sets the value a non 2xx body is decoded into.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.errorResp = errorResp
	return r
}

// Execute sends the request and returns the success response, error response, status code, and error if any.
func (r *Request) Execute() (any, any, int, error) {
	if r.client == nil {
		return nil, nil, 0, fmt.Errorf("client is required")
	}
	if r.path == "" {
		return nil, nil, 0, fmt.Errorf("path is required")
	}

	return r.client.doRequestWithBackoff(r.ctx, r.path, r.queryParams, r.successResp, r.errorResp)
}
