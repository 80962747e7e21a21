package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/shuldan/formkit/pkg/auth"
	"github.com/shuldan/formkit/pkg/config"
	"github.com/shuldan/formkit/pkg/contracts"
	"github.com/shuldan/formkit/pkg/errors"
)

type keyPrompt func(in io.Reader, out io.Writer) (string, error)

// credentialSource resolves the API credentials shared by every command:
// files named with -config, then OPENAI_* variables, then a terminal prompt
// when no key was found.
type credentialSource struct {
	logger    contracts.Logger
	promptKey keyPrompt

	configPaths  stringList
	organization string
}

func (s *credentialSource) configure(flags *flag.FlagSet) {
	s.configPaths = nil

	flags.Var(&s.configPaths, "config", "Credential file (.yaml, .yml or .json), repeatable; later files win")
	flags.StringVar(&s.organization, "organization", "", "Organization, overrides config")
}

func (s *credentialSource) validate() error {
	return config.RequireFiles(s.configPaths...)
}

func (s *credentialSource) load(ctx contracts.CliContext) (auth.Credentials, error) {
	cfg, err := config.Load(auth.NewConfigLoader(s.configPaths...))
	switch {
	case errors.Is(err, config.ErrNoConfigSource):
		cfg = config.NewMapConfig(nil)
	case err != nil:
		return auth.Credentials{}, err
	}

	creds, err := auth.LoadCredentials(cfg)
	if errors.Is(err, auth.ErrMissingAPIKey) && s.promptKey != nil {
		key, promptErr := s.promptKey(ctx.Input(), ctx.Output())
		if promptErr != nil {
			s.logger.Debug("api key prompt unavailable", "error", promptErr)
		} else if key != "" {
			creds = auth.Credentials{
				APIKey:       key,
				Organization: strings.TrimSpace(cfg.GetString(auth.KeyOrganization)),
			}
			err = nil
		}
	}
	if err != nil {
		return auth.Credentials{}, err
	}

	if s.organization != "" {
		creds.Organization = s.organization
	}
	return creds, nil
}

// promptTerminalKey asks for the API key without echo. It only works when
// in is a terminal.
func promptTerminalKey(in io.Reader, out io.Writer) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", auth.ErrMissingAPIKey.WithDetail("key", auth.KeyAPIKey).WithCause(errors.ErrAuth)
	}
	if _, err := fmt.Fprint(out, "OpenAI API key: "); err != nil {
		return "", err
	}
	key, err := term.ReadPassword(int(f.Fd()))
	_, _ = fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(key)), nil
}
