package auth

import "net/http"

// SetHeaders applies creds to h: the bearer authorization, the organization
// when there is one, and accept as the only Accept value.
func SetHeaders(h http.Header, creds Credentials, accept string) {
	h.Set(HeaderAuthorization, creds.BearerToken())
	if creds.HasOrganization() {
		h.Set(HeaderOrganization, creds.Organization)
	} else {
		h.Del(HeaderOrganization)
	}
	h.Del(HeaderAccept)
	if accept != "" {
		h.Set(HeaderAccept, accept)
	}
}

// SetRequestHeaders is SetHeaders on req's headers. A nil request is ignored.
func SetRequestHeaders(req *http.Request, creds Credentials, accept string) {
	if req == nil {
		return
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	SetHeaders(req.Header, creds, accept)
}
