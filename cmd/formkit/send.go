package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shuldan/formkit/pkg/auth"
	"github.com/shuldan/formkit/pkg/contracts"
	"github.com/shuldan/formkit/pkg/errors"
	"github.com/shuldan/formkit/pkg/form"
	fhttp "github.com/shuldan/formkit/pkg/http"
)

const defaultURL = "https://api.openai.com/v1/files"

type sendCommand struct {
	credentialSource

	url       string
	accept    string
	variant   string
	image     string
	imageName string
	jsonl     string
	jsonlName string
	fields    fieldList
	dryRun    bool
	timeout   time.Duration
}

func newSendCommand(logger contracts.Logger) *sendCommand {
	return &sendCommand{
		credentialSource: credentialSource{logger: logger, promptKey: promptTerminalKey},
	}
}

func (c *sendCommand) Name() string {
	return "send"
}

func (c *sendCommand) Description() string {
	return "Assemble a multipart form and print or send it"
}

func (c *sendCommand) Group() string {
	return contracts.FormCliGroup
}

func (c *sendCommand) Configure(flags *flag.FlagSet) {
	c.fields = nil
	c.credentialSource.configure(flags)

	flags.StringVar(&c.url, "url", defaultURL, "Target URL")
	flags.StringVar(&c.accept, "accept", form.ContentTypeJSON, "Accept header (Content-Type for the sections variant)")
	flags.StringVar(&c.variant, "variant", string(form.KindMultipart), "Form builder: multipart or sections")
	flags.StringVar(&c.image, "image", "", "PNG image to attach")
	flags.StringVar(&c.imageName, "image-name", "image", "Part name for -image")
	flags.StringVar(&c.jsonl, "jsonl", "", "JSONL file to attach")
	flags.StringVar(&c.jsonlName, "jsonl-name", "file", "Part name for -jsonl")
	flags.Var(&c.fields, "field", "Text field as name=value, repeatable")
	flags.BoolVar(&c.dryRun, "dry-run", true, "Print the request instead of sending it")
	flags.DurationVar(&c.timeout, "timeout", 30*time.Second, "Request timeout")
}

func (c *sendCommand) Validate(contracts.CliContext) error {
	if strings.TrimSpace(c.url) == "" {
		return ErrMissingURL.WithCause(errors.ErrValidation)
	}
	if _, err := form.New(form.Kind(c.variant)); err != nil {
		return err
	}
	if c.image == "" && c.jsonl == "" && len(c.fields) == 0 {
		return ErrNothingToSend.WithCause(errors.ErrValidation)
	}
	return c.credentialSource.validate()
}

func (c *sendCommand) Execute(ctx contracts.CliContext) error {
	creds, err := c.load(ctx)
	if err != nil {
		return err
	}

	builder, err := form.New(form.Kind(c.variant))
	if err != nil {
		return err
	}
	if err := c.fill(builder); err != nil {
		return err
	}
	c.logger.Debug("form assembled", "variant", c.variant, "parts", builder.Len(), "credentials", creds.String())

	switch b := builder.(type) {
	case *form.Multipart:
		return c.sendMultipart(ctx, creds, b)
	case *form.Sections:
		return c.sendSections(ctx, creds, b)
	default:
		return form.ErrUnknownKind.WithDetail("kind", c.variant)
	}
}

func (c *sendCommand) fill(b contracts.FormBuilder) error {
	if err := b.AttachImage(c.image, c.imageName); err != nil {
		return err
	}
	if err := b.AttachJSONL(c.jsonl, c.jsonlName); err != nil {
		return err
	}
	for _, f := range c.fields {
		if err := b.AttachValue(f.value, f.name); err != nil {
			return err
		}
	}
	return nil
}

func (c *sendCommand) sendMultipart(ctx contracts.CliContext, creds auth.Credentials, m *form.Multipart) error {
	body, err := m.Bytes()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx.Ctx(), http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set(auth.HeaderContentType, m.ContentType())

	if c.dryRun {
		auth.SetRequestHeaders(req, creds, c.accept)
		return printRequest(ctx.Output(), req.Method, c.url, req.Header, creds, m.Len(), len(body))
	}

	client := auth.NewClient(creds, c.accept)
	client.Timeout = c.timeout

	c.logger.Info("sending form", "url", c.url, "parts", m.Len())
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("failed to close response body", "error", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return printResponse(ctx.Output(), resp.StatusCode, respBody)
}

func (c *sendCommand) sendSections(ctx contracts.CliContext, creds auth.Credentials, s *form.Sections) error {
	opts := []contracts.HTTPRequestOption{
		fhttp.WithContext(ctx.Ctx()),
		fhttp.WithCredentials(creds, ""),
		fhttp.WithForm(s),
		fhttp.WithRequestID(),
	}
	if c.accept != "" {
		opts = append(opts, fhttp.WithHeader(auth.HeaderAccept, c.accept))
	}

	req := fhttp.NewHTTPRequest(http.MethodPost, c.url, nil).Apply(opts...)
	if err := req.Err(); err != nil {
		return err
	}

	if c.dryRun {
		return printRequest(ctx.Output(), req.Method(), c.url, http.Header(req.Headers()), creds, s.Len(), len(req.Body()))
	}

	c.logger.Info("sending form", "url", c.url, "parts", s.Len())
	resp, err := fhttp.NewClient(c.logger, fhttp.WithTimeout(c.timeout)).Do(ctx.Ctx(), req)
	if err != nil {
		return err
	}
	return printResponse(ctx.Output(), resp.StatusCode(), resp.Body())
}

func printRequest(w io.Writer, method, url string, h http.Header, creds auth.Credentials, parts, size int) error {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", method, url)
	for _, k := range keys {
		for _, v := range h[k] {
			if k == auth.HeaderAuthorization {
				v = "Bearer " + creds.MaskedKey()
			}
			fmt.Fprintf(&b, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(&b, "\n%d parts, %d bytes\n", parts, size)

	_, err := io.WriteString(w, b.String())
	return err
}

func printResponse(w io.Writer, status int, body []byte) error {
	if _, err := fmt.Fprintf(w, "HTTP %d\n%s\n", status, bytes.TrimSpace(body)); err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return ErrRequestRejected.WithDetail("status", status).WithCause(statusCause(status))
	}
	return nil
}

// statusCause maps a rejected status onto the shared error categories.
func statusCause(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.ErrAuth
	case status == http.StatusNotFound:
		return errors.ErrNotFound
	case status >= http.StatusInternalServerError:
		return errors.ErrUnavailable
	}
	return nil
}
