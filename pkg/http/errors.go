package http

import "github.com/shuldan/formkit/pkg/errors"

var newHTTPCode = errors.WithPrefix("HTTP")

var (
	ErrHTTPRequest   = newHTTPCode().New("HTTP request failed: {{.method}} {{.url}}")
	ErrRequestBuild  = newHTTPCode().New("failed to build request: {{.method}} {{.url}}")
	ErrBodyRead      = newHTTPCode().New("failed to read response body")
	ErrJSONUnmarshal = newHTTPCode().New("failed to unmarshal JSON")
)
