package loader

import (
	"fmt"
	"sort"

	"github.com/jokarl/lintrc/lint"
)

// Top-level keys recognized in a configuration.
const (
	keyRoot           = "root"
	keyEnv            = "env"
	keyGlobals        = "globals"
	keyExtends        = "extends"
	keyParser         = "parser"
	keyParserOptions  = "parserOptions"
	keyPlugins        = "plugins"
	keyRules          = "rules"
	keySettings       = "settings"
	keyOverrides      = "overrides"
	keyIgnorePatterns = "ignorePatterns"
)

// Keys recognized inside an override block.
const (
	keyFiles         = "files"
	keyExcludedFiles = "excludedFiles"
)

var topLevelKeys = []string{
	keyRoot, keyEnv, keyGlobals, keyExtends, keyParser, keyParserOptions,
	keyPlugins, keyRules, keySettings, keyOverrides, keyIgnorePatterns,
}

var overrideKeys = []string{
	keyFiles, keyExcludedFiles, keyExtends, keyRules, keyEnv, keySettings,
}

// decoder validates a generic configuration tree and builds a lint.Config.
type decoder struct {
	source       string
	allowUnknown bool
	unknownKeys  []string
}

func (d *decoder) malformed(path, format string, args ...any) error {
	return &lint.MalformedConfigError{
		Source: d.source,
		Path:   path,
		Reason: fmt.Sprintf(format, args...),
	}
}

// Decode validates a decoded configuration tree and converts it to a
// lint.Config. Values may come from any decoder; they are normalized first.
func Decode(raw map[string]any, source string) (*lint.Config, error) {
	d := &decoder{source: source}
	return d.decode(raw)
}

func (d *decoder) decode(raw map[string]any) (*lint.Config, error) {
	tree, _ := lint.NormalizeValue(raw).(map[string]any)
	cfg := &lint.Config{Source: d.source}

	for _, key := range sortedKeys(tree) {
		if !contains(topLevelKeys, key) {
			if d.allowUnknown {
				d.unknownKeys = append(d.unknownKeys, key)
				continue
			}
			return nil, d.malformed(key, "unknown configuration key")
		}
	}

	var err error
	if v, ok := tree[keyRoot]; ok {
		b, isBool := v.(bool)
		if !isBool {
			return nil, d.malformed(keyRoot, "expected a boolean, got %s", typeName(v))
		}
		cfg.Root = b
	}
	if cfg.Env, err = d.boolMap(keyEnv, tree[keyEnv]); err != nil {
		return nil, err
	}
	if cfg.Globals, err = d.globals(keyGlobals, tree[keyGlobals]); err != nil {
		return nil, err
	}
	if cfg.Extends, err = d.stringOrList(keyExtends, tree[keyExtends]); err != nil {
		return nil, err
	}
	if cfg.Parser, err = d.str(keyParser, tree[keyParser]); err != nil {
		return nil, err
	}
	if cfg.ParserOptions, err = d.object(keyParserOptions, tree[keyParserOptions]); err != nil {
		return nil, err
	}
	if cfg.Plugins, err = d.stringList(keyPlugins, tree[keyPlugins]); err != nil {
		return nil, err
	}
	if cfg.Rules, err = d.rules(keyRules, tree[keyRules]); err != nil {
		return nil, err
	}
	if cfg.Settings, err = d.object(keySettings, tree[keySettings]); err != nil {
		return nil, err
	}
	if cfg.Overrides, err = d.overrides(keyOverrides, tree[keyOverrides]); err != nil {
		return nil, err
	}
	if cfg.IgnorePatterns, err = d.stringOrList(keyIgnorePatterns, tree[keyIgnorePatterns]); err != nil {
		return nil, err
	}
	if _, err := lint.NewIgnoreMatcher(cfg.IgnorePatterns); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (d *decoder) str(path string, v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", d.malformed(path, "expected a string, got %s", typeName(v))
	}
	return s, nil
}

func (d *decoder) stringList(path string, v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, d.malformed(path, "expected a list of strings, got %s", typeName(v))
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, d.malformed(fmt.Sprintf("%s[%d]", path, i), "expected a string, got %s", typeName(item))
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) stringOrList(path string, v any) ([]string, error) {
	if s, ok := v.(string); ok {
		return []string{s}, nil
	}
	return d.stringList(path, v)
}

func (d *decoder) object(path string, v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, d.malformed(path, "expected a mapping, got %s", typeName(v))
	}
	return m, nil
}

func (d *decoder) boolMap(path string, v any) (map[string]bool, error) {
	m, err := d.object(path, v)
	if err != nil || m == nil {
		return nil, err
	}
	out := make(map[string]bool, len(m))
	for _, k := range sortedKeys(m) {
		b, ok := m[k].(bool)
		if !ok {
			return nil, d.malformed(path+"."+k, "expected a boolean, got %s", typeName(m[k]))
		}
		out[k] = b
	}
	return out, nil
}

func (d *decoder) globals(path string, v any) (map[string]string, error) {
	m, err := d.object(path, v)
	if err != nil || m == nil {
		return nil, err
	}
	out := make(map[string]string, len(m))
	for _, k := range sortedKeys(m) {
		switch val := m[k].(type) {
		case bool:
			if val {
				out[k] = "writable"
			} else {
				out[k] = "readonly"
			}
		case string:
			switch val {
			case "readonly", "readable":
				out[k] = "readonly"
			case "writable", "writeable":
				out[k] = "writable"
			case "off":
				out[k] = "off"
			default:
				return nil, d.malformed(path+"."+k, "expected \"readonly\", \"writable\" or \"off\", got %q", val)
			}
		default:
			return nil, d.malformed(path+"."+k, "expected a string or boolean, got %s", typeName(val))
		}
	}
	return out, nil
}

func (d *decoder) rules(path string, v any) (lint.RuleSet, error) {
	m, err := d.object(path, v)
	if err != nil || m == nil {
		return nil, err
	}
	out := make(lint.RuleSet, len(m))
	for _, name := range sortedKeys(m) {
		entry, err := lint.ParseRuleEntry(m[name])
		if err != nil {
			return nil, d.malformed(path+"."+name, "%v", err)
		}
		out[name] = entry
	}
	return out, nil
}

func (d *decoder) overrides(path string, v any) ([]lint.Override, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, d.malformed(path, "expected a list of override blocks, got %s", typeName(v))
	}
	out := make([]lint.Override, 0, len(list))
	for i, item := range list {
		at := fmt.Sprintf("%s[%d]", path, i)
		m, ok := item.(map[string]any)
		if !ok {
			return nil, d.malformed(at, "expected a mapping, got %s", typeName(item))
		}
		o, err := d.override(at, m)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (d *decoder) override(at string, m map[string]any) (lint.Override, error) {
	var o lint.Override
	for _, key := range sortedKeys(m) {
		if !contains(overrideKeys, key) {
			return o, d.malformed(at+"."+key, "unknown override key")
		}
	}

	var err error
	if o.Files, err = d.stringOrList(at+"."+keyFiles, m[keyFiles]); err != nil {
		return o, err
	}
	if len(o.Files) == 0 {
		return o, d.malformed(at+"."+keyFiles, "at least one pattern is required")
	}
	if o.ExcludedFiles, err = d.stringOrList(at+"."+keyExcludedFiles, m[keyExcludedFiles]); err != nil {
		return o, err
	}
	if _, err := lint.CompilePatterns(o.Files); err != nil {
		return o, err
	}
	if _, err := lint.CompilePatterns(o.ExcludedFiles); err != nil {
		return o, err
	}
	if o.Extends, err = d.stringOrList(at+"."+keyExtends, m[keyExtends]); err != nil {
		return o, err
	}
	if o.Rules, err = d.rules(at+"."+keyRules, m[keyRules]); err != nil {
		return o, err
	}
	if o.Env, err = d.boolMap(at+"."+keyEnv, m[keyEnv]); err != nil {
		return o, err
	}
	if o.Settings, err = d.object(at+"."+keySettings, m[keySettings]); err != nil {
		return o, err
	}
	return o, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
