package http

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/shuldan/formkit/pkg/auth"
	"github.com/shuldan/formkit/pkg/errors"
	"github.com/shuldan/formkit/pkg/form"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("WithHeader", func(t *testing.T) {
		req := NewHTTPRequest("GET", "http://example.com", nil)
		WithHeader("X-Trace", "a")(req)
		WithHeader("X-Trace", "b")(req)

		if got := req.Header("X-Trace"); !cmp.Equal(got, []string{"a", "b"}) {
			t.Errorf("X-Trace = %v", got)
		}
	})

	t.Run("WithHeaders", func(t *testing.T) {
		req := NewHTTPRequest("GET", "http://example.com", nil)
		req.AddHeader("Accept", "text/plain")
		WithHeaders(map[string]string{"Accept": "application/json"})(req)

		if got := req.Header("Accept"); !cmp.Equal(got, []string{"application/json"}) {
			t.Errorf("Accept = %v", got)
		}
	})

	t.Run("WithBearerToken", func(t *testing.T) {
		req := NewHTTPRequest("GET", "http://example.com", nil)
		WithBearerToken("test-token")(req)

		if got := req.Header("Authorization"); len(got) == 0 || got[0] != "Bearer test-token" {
			t.Error("WithBearerToken option not applied correctly")
		}
	})

	t.Run("WithBasicAuth", func(t *testing.T) {
		req := NewHTTPRequest("GET", "http://example.com", nil)
		WithBasicAuth("user", "pass")(req)

		if got := req.Header("Authorization"); len(got) == 0 || got[0] != "Basic dXNlcjpwYXNz" {
			t.Errorf("Authorization = %v", got)
		}
	})

	t.Run("WithUserAgent", func(t *testing.T) {
		req := NewHTTPRequest("GET", "http://example.com", nil)
		WithUserAgent("formkit/1")(req)

		if got := req.Header("User-Agent"); len(got) == 0 || got[0] != "formkit/1" {
			t.Errorf("User-Agent = %v", got)
		}
	})
}

func TestWithCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		creds       auth.Credentials
		contentType string
		want        map[string][]string
	}{
		{
			name:        "key and organization",
			creds:       auth.Credentials{APIKey: "sk-test", Organization: "org-1"},
			contentType: "application/json",
			want: map[string][]string{
				"Authorization":       {"Bearer sk-test"},
				"Openai-Organization": {"org-1"},
				"Content-Type":        {"application/json"},
			},
		},
		{
			name:        "without organization",
			creds:       auth.Credentials{APIKey: "sk-test"},
			contentType: "application/json",
			want: map[string][]string{
				"Authorization": {"Bearer sk-test"},
				"Content-Type":  {"application/json"},
			},
		},
		{
			name:  "empty content type clears it",
			creds: auth.Credentials{APIKey: "sk-test"},
			want: map[string][]string{
				"Authorization": {"Bearer sk-test"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewHTTPRequest("POST", "http://example.com", nil)
			req.AddHeader("Content-Type", "text/plain")
			req.AddHeader("Content-Type", "text/html")
			req.SetHeader("OpenAI-Organization", "org-stale")
			req.SetHeader("Authorization", "Bearer stale")

			req.Apply(WithCredentials(tt.creds, tt.contentType))

			if diff := cmp.Diff(tt.want, req.Headers()); diff != "" {
				t.Errorf("headers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithCredentials_ForeignRequest(t *testing.T) {
	t.Parallel()

	req := &foreignRequest{headers: map[string][]string{}}
	WithCredentials(auth.Credentials{APIKey: "sk-test", Organization: "org"}, "application/json")(req)
	WithForm(form.NewSections())(req)
	WithRequestID()(req)

	if len(req.headers) != 0 {
		t.Errorf("foreign request must be left untouched, got %v", req.headers)
	}
}

func TestWithForm(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 1, 2, 3}
	path := filepath.Join(dir, "cat.png")
	if err := os.WriteFile(path, png, 0o600); err != nil {
		t.Fatal(err)
	}

	s := form.NewSections()
	if err := s.AttachImage(path, "image"); err != nil {
		t.Fatal(err)
	}
	if err := s.AttachValue(42, "n"); err != nil {
		t.Fatal(err)
	}

	req := NewHTTPRequest("POST", "http://example.com", nil).Apply(
		WithCredentials(auth.Credentials{APIKey: "sk-test"}, ""),
		WithForm(s),
	)
	if req.Err() != nil {
		t.Fatalf("unexpected error: %v", req.Err())
	}

	contentType := req.Header("Content-Type")
	if len(contentType) != 1 {
		t.Fatalf("Content-Type = %v", contentType)
	}
	mediaType, params, err := mime.ParseMediaType(contentType[0])
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("bad Content-Type %q: %v", contentType[0], err)
	}

	r := multipart.NewReader(bytes.NewReader(req.Body()), params["boundary"])

	part, err := r.NextPart()
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(part)
	if part.FormName() != "image" || part.FileName() != "image.png" || !bytes.Equal(data, png) {
		t.Errorf("image part = %s %s %v", part.FormName(), part.FileName(), data)
	}

	part, err = r.NextPart()
	if err != nil {
		t.Fatal(err)
	}
	data, _ = io.ReadAll(part)
	if part.FormName() != "n" || string(data) != "42" {
		t.Errorf("value part = %s %q", part.FormName(), data)
	}

	if _, err := r.NextPart(); err != io.EOF {
		t.Errorf("expected exactly two parts, got err %v", err)
	}
}

func TestWithForm_EmptyRecordsError(t *testing.T) {
	t.Parallel()

	req := NewHTTPRequest("POST", "http://example.com", nil).Apply(WithForm(form.NewSections()))
	if !errors.Is(req.Err(), form.ErrEmptyForm) {
		t.Fatalf("expected ErrEmptyForm, got %v", req.Err())
	}
}

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	req := NewHTTPRequest("GET", "http://example.com", nil).Apply(WithRequestID())
	ids := req.Header("X-Request-ID")
	if len(ids) != 1 {
		t.Fatalf("X-Request-ID = %v", ids)
	}
	if _, err := uuid.Parse(ids[0]); err != nil {
		t.Errorf("request id %q is not a uuid: %v", ids[0], err)
	}

	req.Apply(WithRequestID())
	if got := req.Header("X-Request-ID"); !cmp.Equal(got, ids) {
		t.Errorf("existing request id replaced: %v -> %v", ids, got)
	}
}
