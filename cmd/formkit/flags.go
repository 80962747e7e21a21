package main

import (
	"strings"

	"github.com/shuldan/formkit/pkg/errors"
)

var newCmdCode = errors.WithPrefix("FORMKIT")

var (
	ErrInvalidField    = newCmdCode().New("invalid field {{.field}}: expected name=value")
	ErrMissingURL      = newCmdCode().New("target url is required")
	ErrNothingToSend   = newCmdCode().New("nothing to send: pass -image, -jsonl or -field")
	ErrRequestRejected = newCmdCode().New("server answered {{.status}}")
	ErrVerifyFailed    = newCmdCode().New("could not reach {{.url}}")
)

type field struct {
	name  string
	value string
}

// fieldList collects repeated -field name=value flags in order.
type fieldList []field

func (f *fieldList) String() string {
	parts := make([]string, 0, len(*f))
	for _, fl := range *f {
		parts = append(parts, fl.name+"="+fl.value)
	}
	return strings.Join(parts, ",")
}

func (f *fieldList) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return ErrInvalidField.WithDetail("field", s).WithCause(errors.ErrValidation)
	}
	*f = append(*f, field{name: name, value: value})
	return nil
}

// stringList collects a repeated string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
