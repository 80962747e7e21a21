package auth

import "net/http"

// Transport sets the credential headers on every request sent through it,
// the way default headers work on a shared client. The caller's request is
// cloned, never modified.
type Transport struct {
	Credentials Credentials
	Accept      string
	Base        http.RoundTripper
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	r2 := r.Clone(r.Context())
	SetHeaders(r2.Header, t.Credentials, t.Accept)
	return t.base().RoundTrip(r2)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// NewClient returns an http.Client whose requests all carry creds.
func NewClient(creds Credentials, accept string) *http.Client {
	return &http.Client{Transport: &Transport{Credentials: creds, Accept: accept}}
}
