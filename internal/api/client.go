// Package api is the typed client for the TripTales backend REST API.
// The transport layer exposes the raw verb methods; the per-endpoint
// bindings layer JSON encoding, status interpretation, and the error
// taxonomy on top.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer token for authenticated requests.
// *session.Manager satisfies it.
type TokenSource interface {
	CurrentToken() (string, bool)
}

// Response is a raw HTTP result. Status interpretation belongs to the
// caller.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client issues requests against one backend base URL, attaching the
// bearer token whenever the token source yields one.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

// NewClient constructs a Client. tokens may be nil for a client that only
// hits unauthenticated endpoints; logger may be nil to discard logs.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     logger,
	}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &NetworkError{Op: method + " " + path, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.CurrentToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}

	c.log.Debug("api request", "method", method, "path", path, "status", resp.StatusCode)
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// decode interprets resp for the common JSON endpoints: 401 maps to
// ErrUnauthorized, any other non-2xx to *ServerError, and a shape mismatch
// to *DecodeError. out may be nil when only the status matters.
func decode(resp *Response, out any) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServerError{Status: resp.StatusCode, Body: resp.Body}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
