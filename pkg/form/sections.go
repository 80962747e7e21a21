package form

import (
	"bytes"
	"errors"

	"github.com/google/uuid"
)

// Section is one entry of a Sections form. A section without a Filename is a
// plain text field.
type Section struct {
	Name        string
	Filename    string
	ContentType string
	Data        []byte
}

func (s Section) IsFile() bool {
	return s.Filename != ""
}

// Sections is an ordered list of form sections. Its attach methods append to
// the list; Encode renders the list as a multipart/form-data body.
type Sections []Section

func NewSections() *Sections {
	s := make(Sections, 0, 4)
	return &s
}

// AttachImage appends the file at path as "<name>.png" with type image/png.
func (s *Sections) AttachImage(path, name string) error {
	if path == "" {
		return nil
	}
	data, err := readFile(path)
	if err != nil {
		return err
	}
	*s = append(*s, Section{
		Name:        name,
		Filename:    imageFilename(name),
		ContentType: ContentTypeImagePNG,
		Data:        data,
	})
	return nil
}

// AttachJSONL appends the file at path as "<name>.jsonl" with type
// application/jsonl.
func (s *Sections) AttachJSONL(path, name string) error {
	if path == "" {
		return nil
	}
	data, err := readFile(path)
	if err != nil {
		return err
	}
	*s = append(*s, Section{
		Name:        name,
		Filename:    jsonlFilename(name),
		ContentType: ContentTypeJSONLines,
		Data:        data,
	})
	return nil
}

// AttachValue appends the textual form of value as a plain field.
func (s *Sections) AttachValue(value any, name string) error {
	text, ok, err := FormatValue(value)
	if err != nil {
		return ErrMarshalValue.WithDetail("name", name).WithCause(err)
	}
	if !ok {
		return nil
	}
	*s = append(*s, Section{Name: name, Data: []byte(text)})
	return nil
}

func (s *Sections) Len() int {
	if s == nil {
		return 0
	}
	return len(*s)
}

// Encode renders the sections with a fresh boundary and returns the body and
// its Content-Type value.
func (s *Sections) Encode() (body []byte, contentType string, err error) {
	boundary := "formkit-" + uuid.NewString()
	body, err = s.EncodeWithBoundary(boundary)
	if err != nil {
		return nil, "", err
	}
	return body, "multipart/form-data; boundary=" + boundary, nil
}

// EncodeWithBoundary renders the sections using boundary.
func (s *Sections) EncodeWithBoundary(boundary string) ([]byte, error) {
	if err := validateBoundary(boundary); err != nil {
		return nil, ErrInvalidBoundary.
			WithDetail("boundary", boundary).
			WithDetail("reason", err.Error())
	}
	if s.Len() == 0 {
		return nil, ErrEmptyForm
	}

	var b bytes.Buffer
	for i, section := range *s {
		if i == 0 {
			b.WriteString("--" + boundary + "\r\n")
		} else {
			b.WriteString("\r\n--" + boundary + "\r\n")
		}
		b.WriteString("Content-Disposition: " + contentDisposition(section.Name, section.Filename) + "\r\n")
		if section.ContentType != "" {
			b.WriteString("Content-Type: " + section.ContentType + "\r\n")
		}
		b.WriteString("\r\n")
		b.Write(section.Data)
	}
	b.WriteString("\r\n--" + boundary + "--\r\n")

	return b.Bytes(), nil
}

// validateBoundary applies the RFC 2046 section 5.1.1 rules.
func validateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > 70 {
		return errors.New("length must be between 1 and 70")
	}
	for _, r := range boundary {
		if 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			continue
		}
		switch r {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?':
			continue
		}
		return errors.New("invalid character")
	}
	return nil
}
