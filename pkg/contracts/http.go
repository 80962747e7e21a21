package contracts

import (
	"context"
)

type HTTPClient interface {
	Get(ctx context.Context, url string, opts ...HTTPRequestOption) (HTTPResponse, error)
	Post(ctx context.Context, url string, body interface{}, opts ...HTTPRequestOption) (HTTPResponse, error)
	Do(ctx context.Context, req HTTPRequest) (HTTPResponse, error)
}

type HTTPRequest interface {
	Method() string
	URL() string
	Header(key string) []string
	Headers() map[string][]string
	Body() []byte
	Context() context.Context
}

type HTTPResponse interface {
	StatusCode() int
	Header(key string) []string
	Headers() map[string][]string
	Body() []byte
	Request() HTTPRequest
	JSON(v interface{}) error
	String() string
	IsSuccess() bool
}

type HTTPRequestOption func(HTTPRequest)
