package form

import (
	"os"
	"strings"

	"github.com/shuldan/formkit/pkg/contracts"
)

const (
	ContentTypeImagePNG  = "image/png"
	ContentTypeJSON      = "application/json"
	ContentTypeJSONLines = "application/jsonl"
	ContentTypeText      = "text/plain; charset=utf-8"
)

type Kind string

const (
	KindMultipart Kind = "multipart"
	KindSections  Kind = "sections"
)

var (
	_ contracts.FormBuilder = (*Multipart)(nil)
	_ contracts.FormBuilder = (*Sections)(nil)
)

// New returns an empty builder of the given kind.
func New(kind Kind) (contracts.FormBuilder, error) {
	switch kind {
	case KindMultipart:
		return NewMultipart(), nil
	case KindSections:
		return NewSections(), nil
	default:
		return nil, ErrUnknownKind.WithDetail("kind", string(kind))
	}
}

func imageFilename(name string) string {
	return name + ".png"
}

func jsonlFilename(name string) string {
	return name + ".jsonl"
}

// readFile reads the whole file. The error is passed through untouched.
func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func contentDisposition(name, filename string) string {
	if filename == "" {
		return `form-data; name="` + escapeQuotes(name) + `"`
	}
	return `form-data; name="` + escapeQuotes(name) + `"; filename="` + escapeQuotes(filename) + `"`
}
