package config

import "github.com/shuldan/formkit/pkg/errors"

var newConfigCode = errors.WithPrefix("CONFIG")

var (
	ErrNoConfigSource    = newConfigCode().New("no valid configuration source found. Loader: {{.loader}}")
	ErrParseYAML         = newConfigCode().New("failed to parse YAML file {{.path}}: {{.reason}}")
	ErrParseJSON         = newConfigCode().New("failed to parse JSON file {{.path}}: {{.reason}}")
	ErrFileNotFound      = newConfigCode().New("configuration file {{.path}} not found")
	ErrUnsupportedFormat = newConfigCode().New("configuration file {{.path}} is not .yaml, .yml or .json")
)
