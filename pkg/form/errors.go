package form

import "github.com/shuldan/formkit/pkg/errors"

var newFormCode = errors.WithPrefix("FORM")

var (
	ErrUnknownKind     = newFormCode().New("unknown form kind: {{.kind}}")
	ErrFormClosed      = newFormCode().New("form is closed, cannot attach {{.name}}")
	ErrEmptyForm       = newFormCode().New("form has no parts")
	ErrInvalidBoundary = newFormCode().New("invalid boundary {{.boundary}}: {{.reason}}")
	ErrMarshalValue    = newFormCode().New("failed to render value for field {{.name}}")
)
