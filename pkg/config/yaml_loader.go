package config

import (
	"github.com/goccy/go-yaml"
)

type yamlConfigLoader struct {
	paths []string
}

// Load merges every readable file among paths, later files winning.
func (l *yamlConfigLoader) Load() (map[string]any, error) {
	return loadFiles("yaml", l.paths, decodeYAML, ErrParseYAML)
}

func decodeYAML(data []byte, v *map[string]any) error {
	return yaml.UnmarshalWithOptions(data, v, yaml.UseJSONUnmarshaler())
}
