package config

import (
	"os"
	"strconv"
	"strings"
)

type envConfigLoader struct {
	prefix string
}

// Load maps PREFIX_A__B=v to a.b=v. Empty variables are ignored so they never
// blank out a value from a file. Values that parse as booleans or numbers are
// typed, except for keys that look like secrets, which stay strings.
func (l *envConfigLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		key, value, ok := strings.Cut(env, "=")
		if !ok || value == "" {
			continue
		}

		configKey := strings.ToLower(strings.TrimPrefix(key, l.prefix))
		configKey = strings.ReplaceAll(configKey, "__", ".")
		if configKey == "" {
			continue
		}

		setNested(config, configKey, typedValue(configKey, value))
	}

	return config, nil
}

func typedValue(key, value string) any {
	if isSecretKey(key) {
		return value
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func isSecretKey(key string) bool {
	return strings.HasSuffix(key, "key") || strings.HasSuffix(key, "token") || strings.HasSuffix(key, "secret")
}

func setNested(m map[string]any, key string, value any) {
	keys := strings.Split(key, ".")
	last := len(keys) - 1

	current := m
	for i, k := range keys {
		if i == last {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[k] = next
		}
		current = next
	}
}
