package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/shuldan/formkit/pkg/auth"
	"github.com/shuldan/formkit/pkg/contracts"
)

const defaultTimeout = 30 * time.Second

type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.client.Transport = rt
	}
}

// Client sends each request exactly once. There are no retries.
type Client struct {
	client *http.Client
	logger contracts.Logger
}

var _ contracts.HTTPClient = (*Client)(nil)

func NewClient(logger contracts.Logger, opts ...ClientOption) *Client {
	c := &Client{
		client: &http.Client{Timeout: defaultTimeout},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, url string, opts ...contracts.HTTPRequestOption) (contracts.HTTPResponse, error) {
	return c.Do(ctx, NewHTTPRequest(http.MethodGet, url, nil).Apply(opts...))
}

func (c *Client) Post(ctx context.Context, url string, body interface{}, opts ...contracts.HTTPRequestOption) (contracts.HTTPResponse, error) {
	return c.Do(ctx, NewHTTPRequest(http.MethodPost, url, body).Apply(opts...))
}

func (c *Client) Do(ctx context.Context, req contracts.HTTPRequest) (contracts.HTTPResponse, error) {
	if r, ok := req.(*Request); ok && r.Err() != nil {
		return nil, ErrRequestBuild.
			WithDetail("method", req.Method()).
			WithDetail("url", req.URL()).
			WithCause(r.Err())
	}
	if ctx == nil {
		ctx = req.Context()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), req.URL(), bytes.NewReader(req.Body()))
	if err != nil {
		return nil, ErrRequestBuild.
			WithDetail("method", req.Method()).
			WithDetail("url", req.URL()).
			WithCause(err)
	}
	for key, values := range req.Headers() {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	c.logDebug("sending request",
		"method", req.Method(),
		"url", req.URL(),
		"request_id", httpReq.Header.Get(headerRequestID),
		"headers", redact(httpReq.Header),
		"body_bytes", len(req.Body()),
	)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logError("request failed", "method", req.Method(), "url", req.URL(), "error", err)
		return nil, ErrHTTPRequest.
			WithDetail("method", req.Method()).
			WithDetail("url", req.URL()).
			WithCause(err)
	}

	body, err := io.ReadAll(resp.Body)
	if closeErr := resp.Body.Close(); closeErr != nil {
		c.logError("failed to close response body", "error", closeErr)
	}
	if err != nil {
		return nil, ErrBodyRead.WithCause(err)
	}

	c.logDebug("response received",
		"method", req.Method(),
		"url", req.URL(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return &httpResponse{
		statusCode: resp.StatusCode,
		headers:    resp.Header,
		body:       body,
		request:    req,
	}, nil
}

func (c *Client) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Client) logError(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}

func redact(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for key := range h {
		if key == auth.HeaderAuthorization {
			out[key] = "[REDACTED]"
			continue
		}
		out[key] = h.Get(key)
	}
	return out
}
