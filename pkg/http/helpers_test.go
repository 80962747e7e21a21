package http

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shuldan/formkit/pkg/contracts"
)

type mockLogger struct {
	messages []string
	mu       sync.Mutex
}

func (m *mockLogger) log(level, msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	formatted := fmt.Sprintf("[%s] %s", level, msg)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			formatted += fmt.Sprintf(" %v=%v", args[i], args[i+1])
		}
	}
	m.messages = append(m.messages, formatted)
}

func (m *mockLogger) Trace(msg string, args ...any) { m.log("TRACE", msg, args...) }
func (m *mockLogger) Debug(msg string, args ...any) { m.log("DEBUG", msg, args...) }
func (m *mockLogger) Info(msg string, args ...any)  { m.log("INFO", msg, args...) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.log("WARN", msg, args...) }
func (m *mockLogger) Error(msg string, args ...any) { m.log("ERROR", msg, args...) }
func (m *mockLogger) Critical(msg string, args ...any) {
	m.log("CRITICAL", msg, args...)
}
func (m *mockLogger) With(args ...any) contracts.Logger { return m }

func (m *mockLogger) getMessages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.messages))
	copy(result, m.messages)
	return result
}

func (m *mockLogger) contains(substr string) bool {
	for _, msg := range m.getMessages() {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

// foreignRequest satisfies contracts.HTTPRequest without being a *Request.
type foreignRequest struct {
	headers map[string][]string
}

func (f *foreignRequest) Method() string               { return "GET" }
func (f *foreignRequest) URL() string                  { return "http://example.com" }
func (f *foreignRequest) Header(key string) []string   { return f.headers[key] }
func (f *foreignRequest) Headers() map[string][]string { return f.headers }
func (f *foreignRequest) Body() []byte                 { return nil }
func (f *foreignRequest) Context() context.Context     { return context.Background() }
