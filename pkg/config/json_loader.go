package config

import (
	"encoding/json"
)

type jsonConfigLoader struct {
	paths []string
}

// Load merges every readable file among paths, later files winning.
func (l *jsonConfigLoader) Load() (map[string]any, error) {
	return loadFiles("json", l.paths, decodeJSON, ErrParseJSON)
}

func decodeJSON(data []byte, v *map[string]any) error {
	return json.Unmarshal(data, v)
}
