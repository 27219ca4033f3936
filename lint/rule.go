package lint

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RuleEntry is the configuration of a single rule: a severity and the
// rule-specific options that follow it in the array form
// ["error", {...}, ...].
//
// Example:
//
//	entry := lint.RuleEntry{
//	    Severity: lint.Error,
//	    Options:  []any{map[string]any{"allow": []any{"warn", "error"}}},
//	}
type RuleEntry struct {
	// Severity is the configured level.
	Severity Severity
	// Options are the option values after the severity. Nil means none.
	Options []any
}

// ParseRuleEntry converts a decoded rule value to a RuleEntry. The value is
// either a bare severity or a non-empty list whose first element is the
// severity.
func ParseRuleEntry(v any) (RuleEntry, error) {
	list, ok := v.([]any)
	if !ok {
		sev, err := ParseSeverity(v)
		if err != nil {
			return RuleEntry{}, err
		}
		return RuleEntry{Severity: sev}, nil
	}
	if len(list) == 0 {
		return RuleEntry{}, fmt.Errorf("rule configuration list must start with a severity")
	}
	sev, err := ParseSeverity(list[0])
	if err != nil {
		return RuleEntry{}, err
	}
	entry := RuleEntry{Severity: sev}
	if len(list) > 1 {
		entry.Options = make([]any, len(list)-1)
		for i, opt := range list[1:] {
			entry.Options[i] = NormalizeValue(opt)
		}
	}
	return entry, nil
}

// MarshalJSON encodes the entry the way configuration files write it: the
// bare severity when there are no options, the array form otherwise.
func (e RuleEntry) MarshalJSON() ([]byte, error) {
	if len(e.Options) == 0 {
		return json.Marshal(e.Severity)
	}
	out := make([]any, 0, len(e.Options)+1)
	out = append(out, e.Severity)
	out = append(out, e.Options...)
	return json.Marshal(out)
}

// clone returns a copy whose options slice is not shared.
func (e RuleEntry) clone() RuleEntry {
	if e.Options == nil {
		return e
	}
	opts := make([]any, len(e.Options))
	for i, o := range e.Options {
		opts[i] = cloneValue(o)
	}
	return RuleEntry{Severity: e.Severity, Options: opts}
}

// RuleSet maps rule names to their configuration.
type RuleSet map[string]RuleEntry

// Clone returns a deep copy of the set. A nil set clones to an empty one.
func (rs RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(rs))
	for name, entry := range rs {
		out[name] = entry.clone()
	}
	return out
}

// Apply layers delta over rs in place. Every key present in delta replaces
// the entry in rs, whatever its severity.
func (rs RuleSet) Apply(delta RuleSet) {
	for name, entry := range delta {
		rs[name] = entry.clone()
	}
}

// Names returns the rule names in lexical order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enabled returns the names of rules whose severity is warn or error, in
// lexical order.
func (rs RuleSet) Enabled() []string {
	var names []string
	for _, name := range rs.Names() {
		if rs[name].Severity.Enabled() {
			names = append(names, name)
		}
	}
	return names
}

// RuleNamespace returns the plugin part of a rule name, or "" for core
// rules.
//
//	RuleNamespace("no-console")                          == ""
//	RuleNamespace("import/order")                        == "import"
//	RuleNamespace("@typescript-eslint/no-explicit-any") == "@typescript-eslint"
//	RuleNamespace("@scope/plugin/rule")                  == "@scope/plugin"
func RuleNamespace(name string) string {
	i := strings.LastIndex(name, "/")
	if i < 0 {
		return ""
	}
	return name[:i]
}

// PluginNamespace returns the rule namespace a plugin declaration
// provides. The eslint-plugin- prefix is optional in declarations.
//
//	PluginNamespace("import")                      == "import"
//	PluginNamespace("eslint-plugin-import")        == "import"
//	PluginNamespace("@typescript-eslint")          == "@typescript-eslint"
//	PluginNamespace("@scope/eslint-plugin-foo")    == "@scope/foo"
//	PluginNamespace("@scope/eslint-plugin")        == "@scope"
func PluginNamespace(plugin string) string {
	const prefix = "eslint-plugin"
	if strings.HasPrefix(plugin, "@") {
		scope, rest, found := strings.Cut(plugin, "/")
		if !found || rest == prefix {
			return scope
		}
		return scope + "/" + strings.TrimPrefix(rest, prefix+"-")
	}
	return strings.TrimPrefix(plugin, prefix+"-")
}
