package form

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
)

// Multipart is a form destination backed by mime/multipart. Parts are written
// in call order into an in-memory body; Close finishes the body.
//
// A Multipart must not be used from several goroutines at once.
type Multipart struct {
	buf    bytes.Buffer
	w      *multipart.Writer
	parts  int
	closed bool
}

func NewMultipart() *Multipart {
	m := &Multipart{}
	m.w = multipart.NewWriter(&m.buf)
	return m
}

// AttachImage appends the file at path as "<name>.png" with type image/png.
func (m *Multipart) AttachImage(path, name string) error {
	if path == "" {
		return nil
	}
	if m.closed {
		return ErrFormClosed.WithDetail("name", name)
	}
	data, err := readFile(path)
	if err != nil {
		return err
	}
	return m.writeFile(name, imageFilename(name), ContentTypeImagePNG, data)
}

// AttachJSONL appends the file at path under its own base name with type
// application/json.
func (m *Multipart) AttachJSONL(path, name string) error {
	if path == "" {
		return nil
	}
	if m.closed {
		return ErrFormClosed.WithDetail("name", name)
	}
	data, err := readFile(path)
	if err != nil {
		return err
	}
	return m.writeFile(name, filepath.Base(path), ContentTypeJSON, data)
}

// AttachValue appends the textual form of value as a plain field.
func (m *Multipart) AttachValue(value any, name string) error {
	text, ok, err := FormatValue(value)
	if err != nil {
		return ErrMarshalValue.WithDetail("name", name).WithCause(err)
	}
	if !ok {
		return nil
	}
	if m.closed {
		return ErrFormClosed.WithDetail("name", name)
	}
	if err = m.w.WriteField(name, text); err != nil {
		return err
	}
	m.parts++
	return nil
}

func (m *Multipart) writeFile(name, filename, contentType string, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", contentDisposition(name, filename))
	h.Set("Content-Type", contentType)

	pw, err := m.w.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err = pw.Write(data); err != nil {
		return err
	}
	m.parts++
	return nil
}

// Len reports the number of parts appended so far.
func (m *Multipart) Len() int {
	return m.parts
}

// ContentType is the multipart/form-data value, boundary included, for the
// request's Content-Type header.
func (m *Multipart) ContentType() string {
	return m.w.FormDataContentType()
}

func (m *Multipart) Boundary() string {
	return m.w.Boundary()
}

// Close writes the trailing boundary. Further attaches fail with
// ErrFormClosed. Calling Close twice is a no-op.
func (m *Multipart) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	return m.w.Close()
}

// Bytes closes the form and returns the encoded body.
func (m *Multipart) Bytes() ([]byte, error) {
	if err := m.Close(); err != nil {
		return nil, err
	}
	return m.buf.Bytes(), nil
}
