// Package plugin provides gRPC-based plugin communication for lintrc.
//
// This file contains conversion functions between protobuf well-known
// types and lint.Preset. A preset travels as a structpb.Struct with the
// same keys a configuration file uses, plus "id".

package plugin

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jokarl/lintrc/lint"
	"github.com/jokarl/lintrc/loader"
)

const presetIDKey = "id"

// toProtoPreset converts a preset to its wire form.
func toProtoPreset(p *lint.Preset) (*structpb.Struct, error) {
	if p == nil {
		return nil, nil
	}

	m := map[string]any{presetIDKey: p.ID}
	if len(p.Extends) > 0 {
		m["extends"] = stringsToAny(p.Extends)
	}
	if len(p.Env) > 0 {
		env := make(map[string]any, len(p.Env))
		for k, v := range p.Env {
			env[k] = v
		}
		m["env"] = env
	}
	if len(p.Plugins) > 0 {
		m["plugins"] = stringsToAny(p.Plugins)
	}
	if p.Parser != "" {
		m["parser"] = p.Parser
	}
	if len(p.ParserOptions) > 0 {
		m["parserOptions"] = lint.NormalizeValue(p.ParserOptions)
	}
	if len(p.Settings) > 0 {
		m["settings"] = lint.NormalizeValue(p.Settings)
	}
	if len(p.Rules) > 0 {
		rules := make(map[string]any, len(p.Rules))
		for name, entry := range p.Rules {
			rule := make([]any, 0, len(entry.Options)+1)
			rule = append(rule, entry.Severity.String())
			for _, opt := range entry.Options {
				rule = append(rule, lint.NormalizeValue(opt))
			}
			rules[name] = rule
		}
		m["rules"] = rules
	}

	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("encode preset %q: %w", p.ID, err)
	}
	return s, nil
}

// fromProtoPreset converts the wire form back to a preset, validating it
// the same way a configuration file is validated.
func fromProtoPreset(s *structpb.Struct) (*lint.Preset, error) {
	if s == nil {
		return nil, nil
	}

	m := s.AsMap()
	id, _ := m[presetIDKey].(string)
	delete(m, presetIDKey)

	cfg, err := loader.Decode(m, fmt.Sprintf("plugin preset %q", id))
	if err != nil {
		return nil, err
	}
	if len(cfg.Overrides) > 0 || len(cfg.IgnorePatterns) > 0 || len(cfg.Globals) > 0 || cfg.Root {
		return nil, &lint.MalformedConfigError{
			Source: fmt.Sprintf("plugin preset %q", id),
			Reason: "presets may not declare root, globals, overrides or ignorePatterns",
		}
	}

	return &lint.Preset{
		ID:            id,
		Extends:       cfg.Extends,
		Env:           cfg.Env,
		Plugins:       cfg.Plugins,
		Parser:        cfg.Parser,
		ParserOptions: cfg.ParserOptions,
		Settings:      cfg.Settings,
		Rules:         cfg.Rules,
	}, nil
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func listToStrings(l *structpb.ListValue) []string {
	values := l.GetValues()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.GetStringValue())
	}
	return out
}
