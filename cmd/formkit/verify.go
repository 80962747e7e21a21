package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/shuldan/formkit/pkg/contracts"
	"github.com/shuldan/formkit/pkg/errors"
)

// verifyCommand checks the resolved credentials by listing the models the key
// can see.
type verifyCommand struct {
	credentialSource

	baseURL string
	timeout time.Duration
}

func newVerifyCommand(logger contracts.Logger) *verifyCommand {
	return &verifyCommand{
		credentialSource: credentialSource{logger: logger, promptKey: promptTerminalKey},
	}
}

func (c *verifyCommand) Name() string {
	return "verify"
}

func (c *verifyCommand) Description() string {
	return "Check the configured credentials against the models endpoint"
}

func (c *verifyCommand) Group() string {
	return contracts.FormCliGroup
}

func (c *verifyCommand) Configure(flags *flag.FlagSet) {
	c.credentialSource.configure(flags)

	flags.StringVar(&c.baseURL, "base-url", "", "API base URL, default "+openai.DefaultConfig("").BaseURL)
	flags.DurationVar(&c.timeout, "timeout", 30*time.Second, "Request timeout")
}

func (c *verifyCommand) Validate(contracts.CliContext) error {
	return c.credentialSource.validate()
}

func (c *verifyCommand) Execute(ctx contracts.CliContext) error {
	creds, err := c.load(ctx)
	if err != nil {
		return err
	}

	cfg := creds.OpenAIConfig()
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: c.timeout}

	c.logger.Debug("listing models", "base_url", cfg.BaseURL, "credentials", creds.String())
	models, err := openai.NewClientWithConfig(cfg).ListModels(ctx.Ctx())
	if err != nil {
		if status, ok := apiStatus(err); ok {
			return ErrRequestRejected.WithDetail("status", status).WithCause(statusCause(status))
		}
		return ErrVerifyFailed.WithDetail("url", cfg.BaseURL).WithCause(err)
	}

	org := creds.Organization
	if org == "" {
		org = "(none)"
	}
	_, err = fmt.Fprintf(ctx.Output(), "key: %s\norganization: %s\nmodels: %d\n",
		creds.MaskedKey(), org, len(models.Models))
	return err
}

func apiStatus(err error) (int, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return apiErr.HTTPStatusCode, true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return reqErr.HTTPStatusCode, true
	}
	return 0, false
}
