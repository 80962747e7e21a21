package errors

var newCoreCode = WithPrefix("CORE")

// Category errors. Package errors use them as causes so callers can test
// errors.Is(err, ErrAuth) without knowing the package.
var (
	ErrValidation  = newCoreCode().New("validation failed")
	ErrAuth        = newCoreCode().New("authentication required")
	ErrNotFound    = newCoreCode().New("resource not found")
	ErrUnavailable = newCoreCode().New("service unavailable")
)
