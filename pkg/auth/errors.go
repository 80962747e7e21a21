package auth

import "github.com/shuldan/formkit/pkg/errors"

var newAuthCode = errors.WithPrefix("AUTH")

var (
	ErrMissingAPIKey = newAuthCode().New("api key is not configured (key {{.key}})")
)
