package config

import "github.com/shuldan/formkit/pkg/contracts"

// Loader produces one layer of raw configuration values.
type Loader interface {
	Load() (map[string]any, error)
}

var (
	_ Loader = (*envConfigLoader)(nil)
	_ Loader = (*yamlConfigLoader)(nil)
	_ Loader = (*jsonConfigLoader)(nil)
	_ Loader = (*chainLoader)(nil)
	_ Loader = (*templatedLoader)(nil)
)

func NewEnvConfigLoader(prefix string) Loader {
	return &envConfigLoader{prefix: prefix}
}

func NewYamlConfigLoader(paths ...string) Loader {
	return &yamlConfigLoader{paths: paths}
}

func NewJSONConfigLoader(paths ...string) Loader {
	return &jsonConfigLoader{paths: paths}
}

// NewChainLoader merges the layers of loaders in order, later layers winning.
func NewChainLoader(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}

// NewTemplatedLoader expands {{ env "NAME" }} style templates in string values.
func NewTemplatedLoader(loader Loader) Loader {
	return &templatedLoader{loader: loader}
}

// NewLayeredLoader is the usual stack: the given YAML and JSON files in the
// order listed, then environment variables starting with envPrefix, with
// template expansion on top. Later layers win. Paths of any other extension
// are ignored; RequireFiles reports them.
func NewLayeredLoader(envPrefix string, paths ...string) Loader {
	loaders := make([]Loader, 0, len(paths)+1)
	for _, path := range paths {
		switch formatOf(path) {
		case formatYAML:
			loaders = append(loaders, NewYamlConfigLoader(path))
		case formatJSON:
			loaders = append(loaders, NewJSONConfigLoader(path))
		}
	}
	loaders = append(loaders, NewEnvConfigLoader(envPrefix))

	return NewTemplatedLoader(NewChainLoader(loaders...))
}

// Load runs loader and wraps the result in a contracts.Config.
func Load(loader Loader) (contracts.Config, error) {
	values, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewMapConfig(values), nil
}

func NewMapConfig(values map[string]any) contracts.Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &MapConfig{values: values}
}
