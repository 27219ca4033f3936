package loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the syntax of a configuration file.
type Format int

const (
	// FormatJSON is plain JSON.
	FormatJSON Format = iota + 1
	// FormatYAML is YAML. Extensionless files such as .eslintrc are read as
	// YAML, which accepts JSON as well.
	FormatYAML
	// FormatTOML is TOML.
	FormatTOML
	// FormatHCL is HCL, in native syntax or, for files named "*.hcl.json",
	// HCL's JSON syntax.
	FormatHCL
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// FormatFromPath infers the format from a file name.
func FormatFromPath(path string) (Format, error) {
	if strings.HasSuffix(strings.ToLower(path), ".hcl.json") {
		return FormatHCL, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml", "":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	// Dotfiles like ".eslintrc" have no extension of their own.
	if base := filepath.Base(path); strings.HasPrefix(base, ".") && strings.Count(base, ".") == 1 {
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported config format %q (want .json, .yaml, .yml, .toml, .hcl or .hcl.json)", ext)
}
