// Package lint provides the core types of a lint rule configuration and
// the logic that resolves them.
//
// A configuration names presets to extend, a local rule map and a list of
// path-scoped overrides. Resolving it flattens the presets and local rules
// into one RuleSet; matching a file path then layers every applicable
// override on top of that set.
//
// Key types:
//   - Severity: rule severity levels (Off, Warn, Error)
//   - RuleEntry, RuleSet: a configured rule and a map of them
//   - Config, Override: the declarative configuration as loaded
//   - Preset, PresetSource, Registry, BuiltinProvider: named rule bundles
//   - Resolver, Resolved: flattening and per-path matching
package lint

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Severity represents the configured level of a rule.
// Values match the numeric form accepted in configuration files.
type Severity int

const (
	// Off disables the rule.
	Off Severity = iota
	// Warn reports findings without failing the run.
	Warn
	// Error reports findings and fails the run.
	Error
)

// String returns the word form of the severity.
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Enabled reports whether the severity turns the rule on.
func (s Severity) Enabled() bool {
	return s == Warn || s == Error
}

// MarshalJSON encodes the severity in word form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseSeverity converts a decoded configuration value to a Severity.
//
// Accepted forms are the words "off", "warn" and "error" in any case and
// the numbers 0, 1 and 2 as any integer kind or an integral float.
func ParseSeverity(v any) (Severity, error) {
	switch val := v.(type) {
	case Severity:
		if val >= Off && val <= Error {
			return val, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "off", "0":
			return Off, nil
		case "warn", "1":
			return Warn, nil
		case "error", "2":
			return Error, nil
		}
	case int:
		return severityFromInt(int64(val), v)
	case int8:
		return severityFromInt(int64(val), v)
	case int16:
		return severityFromInt(int64(val), v)
	case int32:
		return severityFromInt(int64(val), v)
	case int64:
		return severityFromInt(val, v)
	case uint:
		return severityFromInt(int64(val), v)
	case uint8:
		return severityFromInt(int64(val), v)
	case uint16:
		return severityFromInt(int64(val), v)
	case uint32:
		return severityFromInt(int64(val), v)
	case uint64:
		if val <= 2 {
			return Severity(val), nil
		}
	case float32:
		return severityFromFloat(float64(val), v)
	case float64:
		return severityFromFloat(val, v)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return severityFromInt(i, v)
		}
	}
	return Off, fmt.Errorf("invalid severity %#v: expected \"off\", \"warn\", \"error\" or 0, 1, 2", v)
}

func severityFromInt(i int64, orig any) (Severity, error) {
	if i < 0 || i > 2 {
		return Off, fmt.Errorf("invalid severity %v: expected 0, 1 or 2", orig)
	}
	return Severity(i), nil
}

func severityFromFloat(f float64, orig any) (Severity, error) {
	if f != math.Trunc(f) {
		return Off, fmt.Errorf("invalid severity %v: expected 0, 1 or 2", orig)
	}
	return severityFromInt(int64(f), orig)
}
