// Package auth carries the API credentials and applies them to outgoing
// requests.
package auth

import (
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/shuldan/formkit/pkg/config"
	"github.com/shuldan/formkit/pkg/contracts"
	"github.com/shuldan/formkit/pkg/errors"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderOrganization  = "OpenAI-Organization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"

	KeyAPIKey       = "api_key"
	KeyOrganization = "organization"

	EnvPrefix = "OPENAI_"
)

// Credentials authenticate requests. An empty Organization means none.
type Credentials struct {
	APIKey       string
	Organization string
}

// HasOrganization reports whether the organization header should be sent.
func (c Credentials) HasOrganization() bool {
	return c.Organization != ""
}

func (c Credentials) BearerToken() string {
	return "Bearer " + c.APIKey
}

// OpenAIConfig returns a go-openai client configuration carrying the same
// credentials.
func (c Credentials) OpenAIConfig() openai.ClientConfig {
	cfg := openai.DefaultConfig(c.APIKey)
	if c.HasOrganization() {
		cfg.OrgID = c.Organization
	}
	return cfg
}

// String hides the key.
func (c Credentials) String() string {
	masked := "<empty>"
	if c.APIKey != "" {
		masked = maskKey(c.APIKey)
	}
	if c.HasOrganization() {
		return "Credentials{APIKey: " + masked + ", Organization: " + c.Organization + "}"
	}
	return "Credentials{APIKey: " + masked + "}"
}

// MaskedKey is the API key with all but its first three and last four
// characters starred out.
func (c Credentials) MaskedKey() string {
	return maskKey(c.APIKey)
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:3] + strings.Repeat("*", len(key)-7) + key[len(key)-4:]
}

// LoadCredentials reads api_key and organization from cfg.
func LoadCredentials(cfg contracts.Config) (Credentials, error) {
	creds := Credentials{
		APIKey:       strings.TrimSpace(cfg.GetString(KeyAPIKey)),
		Organization: strings.TrimSpace(cfg.GetString(KeyOrganization)),
	}
	if creds.APIKey == "" {
		return Credentials{}, ErrMissingAPIKey.WithDetail("key", KeyAPIKey).WithCause(errors.ErrAuth)
	}
	return creds, nil
}

// NewConfigLoader layers the given YAML/JSON files under OPENAI_* environment
// variables, so OPENAI_API_KEY and OPENAI_ORGANIZATION win over files.
func NewConfigLoader(paths ...string) config.Loader {
	return config.NewLayeredLoader(EnvPrefix, paths...)
}
