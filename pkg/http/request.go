package http

import (
	"context"
	"encoding/json"
	"net/textproto"

	"github.com/shuldan/formkit/pkg/contracts"
)

// Request is the framework's request object. Header keys are stored in
// canonical MIME form. Options that fail record their error on the request;
// Client.Do refuses to send such a request.
type Request struct {
	method  string
	url     string
	headers map[string][]string
	body    []byte
	ctx     context.Context
	err     error
}

var _ contracts.HTTPRequest = (*Request)(nil)

func NewHTTPRequest(method, url string, body interface{}) *Request {
	req := &Request{
		method:  method,
		url:     url,
		headers: make(map[string][]string),
		ctx:     context.Background(),
	}

	switch v := body.(type) {
	case nil:
	case []byte:
		req.body = v
	case string:
		req.body = []byte(v)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			req.err = err
			break
		}
		req.body = data
		req.SetHeader("Content-Type", contentTypeJSON)
	}

	return req
}

// Apply runs opts against r and returns it.
func (r *Request) Apply(opts ...contracts.HTTPRequestOption) *Request {
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Request) Method() string {
	return r.method
}

func (r *Request) URL() string {
	return r.url
}

func (r *Request) Header(key string) []string {
	return r.headers[textproto.CanonicalMIMEHeaderKey(key)]
}

func (r *Request) Headers() map[string][]string {
	return r.headers
}

func (r *Request) Body() []byte {
	return r.body
}

func (r *Request) Context() context.Context {
	return r.ctx
}

func (r *Request) Err() error {
	return r.err
}

func (r *Request) SetHeader(key string, values ...string) {
	r.headers[textproto.CanonicalMIMEHeaderKey(key)] = values
}

func (r *Request) AddHeader(key, value string) {
	k := textproto.CanonicalMIMEHeaderKey(key)
	r.headers[k] = append(r.headers[k], value)
}

func (r *Request) DelHeader(key string) {
	delete(r.headers, textproto.CanonicalMIMEHeaderKey(key))
}

func (r *Request) SetBody(body []byte) {
	r.body = body
}

func (r *Request) SetContext(ctx context.Context) {
	r.ctx = ctx
}

func (r *Request) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}
