package config

import (
	"reflect"
	"testing"
)

func newTestConfig() *MapConfig {
	return &MapConfig{values: map[string]any{
		"api_key":      "sk-test",
		"organization": "org-1",
		"timeout":      30,
		"ratio":        1.5,
		"debug":        "yes",
		"verbose":      0,
		"accept":       "application/json, text/plain",
		"tags":         []any{"a", 2},
		"client": map[string]any{
			"base_url": "https://api.openai.com/v1",
			"retries":  int64(2),
		},
	}}
}

func TestMapConfig_HasAndGet(t *testing.T) {
	c := newTestConfig()

	if !c.Has("client.base_url") {
		t.Error("expected nested key to exist")
	}
	if c.Has("client.missing") || c.Has("api_key.nested") {
		t.Error("expected missing keys to be absent")
	}
	if c.Get("organization") != "org-1" {
		t.Errorf("unexpected organization %v", c.Get("organization"))
	}
	if c.Get("nope") != nil {
		t.Error("expected nil for missing key")
	}
}

func TestMapConfig_GetString(t *testing.T) {
	c := newTestConfig()

	if got := c.GetString("api_key"); got != "sk-test" {
		t.Errorf("expected sk-test, got %q", got)
	}
	if got := c.GetString("timeout"); got != "30" {
		t.Errorf("expected \"30\", got %q", got)
	}
	if got := c.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := c.GetString("missing"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestMapConfig_GetInt(t *testing.T) {
	c := newTestConfig()

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{"timeout", 0, 30},
		{"ratio", 0, 1},
		{"client.retries", 0, 2},
		{"api_key", 7, 7},
		{"missing", 9, 9},
	}
	for _, tt := range tests {
		if got := c.GetInt(tt.key, tt.def); got != tt.want {
			t.Errorf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestMapConfig_GetBool(t *testing.T) {
	c := newTestConfig()

	if !c.GetBool("debug") {
		t.Error("expected \"yes\" to be true")
	}
	if c.GetBool("verbose", true) {
		t.Error("expected 0 to be false")
	}
	if !c.GetBool("missing", true) {
		t.Error("expected default true")
	}
}

func TestMapConfig_GetStringSlice(t *testing.T) {
	c := newTestConfig()

	if got := c.GetStringSlice("accept"); !reflect.DeepEqual(got, []string{"application/json", "text/plain"}) {
		t.Errorf("unexpected split: %v", got)
	}
	if got := c.GetStringSlice("tags"); !reflect.DeepEqual(got, []string{"a", "2"}) {
		t.Errorf("unexpected slice: %v", got)
	}
	if got := c.GetStringSlice("missing"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestMapConfig_GetSub(t *testing.T) {
	c := newTestConfig()

	sub, ok := c.GetSub("client")
	if !ok {
		t.Fatal("expected client sub config")
	}
	if sub.GetString("base_url") != "https://api.openai.com/v1" {
		t.Errorf("unexpected base_url %q", sub.GetString("base_url"))
	}
	if _, ok := c.GetSub("api_key"); ok {
		t.Error("expected scalar key not to yield a sub config")
	}
}

func TestMapConfig_All_IsCopy(t *testing.T) {
	c := newTestConfig()

	all := c.All()
	all["api_key"] = "changed"

	if c.GetString("api_key") != "sk-test" {
		t.Error("All must not expose the underlying map")
	}
}

func TestNewMapConfig_Nil(t *testing.T) {
	c := NewMapConfig(nil)
	if c.Has("anything") {
		t.Error("expected empty config")
	}
}
