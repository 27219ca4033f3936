// Package loader reads lint configurations from JSON, YAML, TOML and HCL
// files and validates their shape.
//
// Example:
//
//	cfg, err := loader.New().LoadFile(".eslintrc.yaml")
//	if err != nil {
//	    return err
//	}
//	resolved, err := lint.NewResolver(registry).Resolve(cfg)
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jokarl/lintrc/hclext"
	"github.com/jokarl/lintrc/lint"
)

// Loader reads configuration files. The zero value is ready to use.
type Loader struct {
	// Logger receives debug output and warnings. Defaults to a null logger.
	Logger hclog.Logger
	// AllowUnknownKeys logs unknown top-level keys instead of failing.
	AllowUnknownKeys bool
}

// New returns a Loader with default settings.
func New() *Loader {
	return &Loader{}
}

// LoadFile reads and validates the configuration at path. The returned
// config's BaseDir is the file's directory.
func (l *Loader) LoadFile(path string) (*lint.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	format, err := FormatFromPath(abs)
	if err != nil {
		return nil, &lint.MalformedConfigError{Source: path, Reason: err.Error()}
	}

	// #nosec G304 -- configuration file paths are provided by the operator
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := l.Parse(data, format, path)
	if err != nil {
		return nil, err
	}
	cfg.BaseDir = filepath.Dir(abs)
	l.logger().Debug("loaded configuration", "path", abs, "format", format, "extends", len(cfg.Extends), "rules", len(cfg.Rules), "overrides", len(cfg.Overrides))
	return cfg, nil
}

// Parse decodes data in the given format and validates it. source names
// the input in error messages and may be empty.
func (l *Loader) Parse(data []byte, format Format, source string) (*lint.Config, error) {
	var (
		raw map[string]any
		err error
	)
	switch format {
	case FormatJSON:
		raw, err = decodeJSON(data)
	case FormatYAML:
		raw, err = decodeYAML(data)
	case FormatTOML:
		raw, err = decodeTOML(data)
	case FormatHCL:
		raw, err = decodeHCL(data, source)
	default:
		return nil, &lint.MalformedConfigError{Source: source, Reason: fmt.Sprintf("unsupported format %v", format)}
	}
	if err != nil {
		return nil, &lint.MalformedConfigError{Source: source, Reason: err.Error()}
	}

	d := &decoder{source: source, allowUnknown: l.AllowUnknownKeys}
	cfg, err := d.decode(raw)
	if err != nil {
		return nil, err
	}
	for _, key := range d.unknownKeys {
		l.logger().Warn("ignoring unknown configuration key", "source", source, "key", key)
	}
	return cfg, nil
}

func (l *Loader) logger() hclog.Logger {
	if l.Logger == nil {
		return hclog.NewNullLogger()
	}
	return l.Logger
}

func decodeJSON(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if dec.More() {
		return nil, errors.New("parse json: trailing content after configuration object")
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var raw map[string]any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse yaml: file contains multiple documents")
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// hclSchema mirrors the recognized keys. Overrides may be written either as
// an "overrides" list attribute or as repeated "override" blocks; blocks
// are appended after the list.
var hclSchema = &hclext.BodySchema{
	Attributes: attributeSchemas(topLevelKeys),
	Blocks: []hclext.BlockSchema{
		{Type: "override", Body: &hclext.BodySchema{Attributes: attributeSchemas(overrideKeys)}},
	},
}

func attributeSchemas(keys []string) []hclext.AttributeSchema {
	out := make([]hclext.AttributeSchema, len(keys))
	for i, k := range keys {
		out[i] = hclext.AttributeSchema{Name: k}
	}
	return out
}

func decodeHCL(data []byte, source string) (map[string]any, error) {
	filename := source
	if filename == "" {
		filename = "config.hcl"
	}
	content, diags := hclext.ParseFile(data, filename, hclSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	raw, diags := content.Values()
	if diags.HasErrors() {
		return nil, diags
	}

	var blocks []any
	for _, block := range content.Blocks {
		values, diags := block.Body.Values()
		if diags.HasErrors() {
			return nil, diags
		}
		blocks = append(blocks, values)
	}
	if len(blocks) > 0 {
		existing, _ := raw[keyOverrides].([]any)
		if raw[keyOverrides] != nil && existing == nil {
			return nil, fmt.Errorf("%s: overrides must be a list", filename)
		}
		raw[keyOverrides] = append(existing, blocks...)
	}
	return raw, nil
}
