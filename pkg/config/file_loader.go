package config

import (
	"os"

	"github.com/shuldan/formkit/pkg/errors"
)

type decodeFunc func(data []byte, v *map[string]any) error

// loadFiles decodes every readable file among paths and merges them in order,
// later files winning. Missing files are skipped; with none found the result
// is ErrNoConfigSource.
func loadFiles(loader string, paths []string, decode decodeFunc, parseErr *errors.Error) (map[string]any, error) {
	merged := make(map[string]any)
	found := false

	for _, path := range paths {
		resolved, ok := expandPath(path)
		if !ok || !fileExists(resolved) {
			continue
		}

		data, err := os.ReadFile(resolved)
		if err != nil {
			continue
		}

		var config map[string]any
		if err = decode(data, &config); err != nil {
			return nil, parseErr.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}

		found = true
		mergeMaps(merged, config)
	}

	if !found {
		return nil, ErrNoConfigSource.WithDetail("loader", loader)
	}
	return merged, nil
}
