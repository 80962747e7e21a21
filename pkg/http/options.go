package http

import (
	"context"
	"encoding/base64"

	"github.com/google/uuid"

	"github.com/shuldan/formkit/pkg/auth"
	"github.com/shuldan/formkit/pkg/contracts"
	"github.com/shuldan/formkit/pkg/form"
)

const (
	contentTypeJSON = "application/json"
	headerRequestID = "X-Request-Id"
)

// Options below act only on *Request; any other contracts.HTTPRequest is left
// untouched.

func WithHeader(key, value string) contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		if r, ok := req.(*Request); ok {
			r.AddHeader(key, value)
		}
	}
}

func WithHeaders(headers map[string]string) contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		if r, ok := req.(*Request); ok {
			for key, value := range headers {
				r.SetHeader(key, value)
			}
		}
	}
}

func WithContext(ctx context.Context) contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		if r, ok := req.(*Request); ok {
			r.SetContext(ctx)
		}
	}
}

func WithBasicAuth(username, password string) contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		if r, ok := req.(*Request); ok {
			token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
			r.SetHeader(auth.HeaderAuthorization, "Basic "+token)
		}
	}
}

func WithBearerToken(token string) contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		if r, ok := req.(*Request); ok {
			r.SetHeader(auth.HeaderAuthorization, "Bearer "+token)
		}
	}
}

func WithUserAgent(userAgent string) contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		if r, ok := req.(*Request); ok {
			r.SetHeader("User-Agent", userAgent)
		}
	}
}

// WithCredentials sets the bearer authorization, the organization header when
// creds has one, and contentType as the only Content-Type value.
func WithCredentials(creds auth.Credentials, contentType string) contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		r, ok := req.(*Request)
		if !ok {
			return
		}
		r.DelHeader(auth.HeaderContentType)
		if contentType != "" {
			r.SetHeader(auth.HeaderContentType, contentType)
		}
		if creds.HasOrganization() {
			r.SetHeader(auth.HeaderOrganization, creds.Organization)
		} else {
			r.DelHeader(auth.HeaderOrganization)
		}
		r.SetHeader(auth.HeaderAuthorization, creds.BearerToken())
	}
}

// WithForm encodes s as the request body and sets the matching multipart
// Content-Type. Apply it after WithCredentials, which would otherwise replace
// that Content-Type.
func WithForm(s *form.Sections) contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		r, ok := req.(*Request)
		if !ok {
			return
		}
		body, contentType, err := s.Encode()
		if err != nil {
			r.setErr(err)
			return
		}
		r.SetBody(body)
		r.SetHeader(auth.HeaderContentType, contentType)
	}
}

// WithRequestID tags the request with a random X-Request-Id unless it already
// has one.
func WithRequestID() contracts.HTTPRequestOption {
	return func(req contracts.HTTPRequest) {
		if r, ok := req.(*Request); ok && len(r.Header(headerRequestID)) == 0 {
			r.SetHeader(headerRequestID, uuid.NewString())
		}
	}
}
