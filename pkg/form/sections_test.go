package form

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func encodeSections(t *testing.T, s *Sections) []parsedPart {
	t.Helper()
	body, contentType, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return parseBody(t, body, contentType)
}

func TestSections_AttachImage(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "cat.png", pngBytes)
	s := NewSections()

	if err := s.AttachImage(path, "image"); err != nil {
		t.Fatalf("AttachImage failed: %v", err)
	}

	want := Sections{{
		Name:        "image",
		Filename:    "image.png",
		ContentType: "image/png",
		Data:        pngBytes,
	}}
	if diff := cmp.Diff(want, *s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSections_AttachJSONL(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "training.jsonl", []byte(jsonlContent))
	s := NewSections()

	if err := s.AttachJSONL(path, "file"); err != nil {
		t.Fatalf("AttachJSONL failed: %v", err)
	}

	want := []parsedPart{{
		Name:        "file",
		Filename:    "file.jsonl",
		ContentType: "application/jsonl",
		Data:        jsonlContent,
	}}
	if diff := cmp.Diff(want, encodeSections(t, s)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSections_AttachValue(t *testing.T) {
	t.Parallel()

	s := NewSections()
	_ = s.AttachValue(42, "n")
	_ = s.AttachValue(nil, "skipped")
	_ = s.AttachValue(false, "stream")

	want := Sections{
		{Name: "n", Data: []byte("42")},
		{Name: "stream", Data: []byte("false")},
	}
	if diff := cmp.Diff(want, *s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if (*s)[0].IsFile() {
		t.Error("value sections are not files")
	}
}

func TestSections_MissingFile(t *testing.T) {
	t.Parallel()

	s := NewSections()
	err := s.AttachImage(filepath.Join(t.TempDir(), "nope.png"), "image")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected no sections, got %d", s.Len())
	}
}

func TestSections_RoundTrip(t *testing.T) {
	t.Parallel()

	binary := append([]byte("\r\n--formkit-\r\n"), pngBytes...)
	imagePath := writeTemp(t, "mask.png", binary)
	jsonlPath := writeTemp(t, "data.jsonl", []byte(jsonlContent))

	s := NewSections()
	if err := s.AttachImage(imagePath, "mask"); err != nil {
		t.Fatal(err)
	}
	if err := s.AttachJSONL(jsonlPath, "file"); err != nil {
		t.Fatal(err)
	}
	if err := s.AttachValue("fine-tune", "purpose"); err != nil {
		t.Fatal(err)
	}

	want := []parsedPart{
		{Name: "mask", Filename: "mask.png", ContentType: "image/png", Data: string(binary)},
		{Name: "file", Filename: "file.jsonl", ContentType: "application/jsonl", Data: jsonlContent},
		{Name: "purpose", Data: "fine-tune"},
	}
	if diff := cmp.Diff(want, encodeSections(t, s)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSections_EncodeWithBoundary(t *testing.T) {
	t.Parallel()

	s := &Sections{{Name: "n", Data: []byte("42")}}
	body, err := s.EncodeWithBoundary("b0undary")
	if err != nil {
		t.Fatalf("EncodeWithBoundary failed: %v", err)
	}

	want := "--b0undary\r\n" +
		"Content-Disposition: form-data; name=\"n\"\r\n" +
		"\r\n" +
		"42" +
		"\r\n--b0undary--\r\n"
	if string(body) != want {
		t.Errorf("unexpected body:\n%q\nwant:\n%q", body, want)
	}
}

func TestSections_EncodeErrors(t *testing.T) {
	t.Parallel()

	if _, _, err := NewSections().Encode(); !errors.Is(err, ErrEmptyForm) {
		t.Errorf("expected ErrEmptyForm, got %v", err)
	}

	s := &Sections{{Name: "n", Data: []byte("1")}}
	for _, boundary := range []string{"", "bad boundary!", strings.Repeat("x", 71)} {
		if _, err := s.EncodeWithBoundary(boundary); !errors.Is(err, ErrInvalidBoundary) {
			t.Errorf("boundary %q: expected ErrInvalidBoundary, got %v", boundary, err)
		}
	}
}

func TestSections_EncodeUsesFreshBoundary(t *testing.T) {
	t.Parallel()

	s := &Sections{{Name: "n", Data: []byte("1")}}
	_, ct1, err := s.Encode()
	if err != nil {
		t.Fatal(err)
	}
	_, ct2, _ := s.Encode()

	if !strings.HasPrefix(ct1, "multipart/form-data; boundary=formkit-") {
		t.Errorf("unexpected content type %q", ct1)
	}
	if ct1 == ct2 {
		t.Error("expected a new boundary per encode")
	}
}
