package config

import "github.com/shuldan/formkit/pkg/errors"

type chainLoader struct {
	loaders []Loader
}

// Load merges every layer that loads. A layer failing with anything other
// than ErrNoConfigSource aborts the chain; a chain with no values at all
// reports the last error seen.
func (c *chainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)
	var lastErr error

	for _, loader := range c.loaders {
		config, err := loader.Load()
		if err != nil {
			if !errors.Is(err, ErrNoConfigSource) {
				return nil, err
			}
			lastErr = err
			continue
		}

		mergeMaps(final, config)
	}

	if len(final) == 0 {
		if lastErr == nil {
			lastErr = ErrNoConfigSource.WithDetail("loader", "chain")
		}
		return nil, lastErr
	}

	return final, nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if vMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, vMap)
				continue
			}
		}
		dst[k] = v
	}
}
