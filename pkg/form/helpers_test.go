package form

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

const jsonlContent = "{\"prompt\":\"a\",\"completion\":\"b\"}\n{\"prompt\":\"c\",\"completion\":\"d\"}\n"

type parsedPart struct {
	Name        string
	Filename    string
	ContentType string
	Data        string
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func parseBody(t *testing.T, body []byte, contentType string) []parsedPart {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("bad content type %q: %v", contentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("unexpected media type %q", mediaType)
	}

	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	var parts []parsedPart
	for {
		p, err := r.NextPart()
		if errors.Is(err, io.EOF) {
			return parts
		}
		if err != nil {
			t.Fatalf("reading part: %v", err)
		}
		data, err := io.ReadAll(p)
		if err != nil {
			t.Fatalf("reading part body: %v", err)
		}
		parts = append(parts, parsedPart{
			Name:        p.FormName(),
			Filename:    p.FileName(),
			ContentType: p.Header.Get("Content-Type"),
			Data:        string(data),
		})
	}
}

type quality int

func (q quality) MarshalForm() (string, error) {
	if q > 0 {
		return "hd", nil
	}
	return "standard", nil
}

type failingValue struct{}

func (failingValue) MarshalForm() (string, error) {
	return "", errors.New("cannot render")
}

type size struct{ w, h int }

func (s *size) String() string {
	return strconv.Itoa(s.w) + "x" + strconv.Itoa(s.h)
}

type label struct{ s string }

func (l *label) MarshalForm() (string, error) {
	return "m:" + l.s, nil
}
