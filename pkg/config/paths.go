package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shuldan/formkit/pkg/errors"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".json":
		return formatJSON
	}
	return ""
}

// RequireFiles checks paths that a user named explicitly: each must be a
// .yaml, .yml or .json file that exists.
func RequireFiles(paths ...string) error {
	for _, path := range paths {
		if formatOf(path) == "" {
			return ErrUnsupportedFormat.WithDetail("path", path).WithCause(errors.ErrValidation)
		}
		resolved, ok := expandPath(path)
		if !ok || !fileExists(resolved) {
			return ErrFileNotFound.WithDetail("path", path).WithCause(errors.ErrNotFound)
		}
	}
	return nil
}

// expandPath resolves a leading ~ and cleans the result. Paths that still
// climb out with .. after cleaning are rejected.
func expandPath(path string) (string, bool) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	cleaned := filepath.Clean(path)
	for _, seg := range strings.Split(filepath.ToSlash(cleaned), "/") {
		if seg == ".." {
			return "", false
		}
	}
	return cleaned, true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
