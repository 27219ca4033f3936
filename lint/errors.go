package lint

import "fmt"

// MalformedConfigError reports a structural violation of the expected
// configuration shape.
type MalformedConfigError struct {
	// Source is the file the configuration came from, if any.
	Source string
	// Path is the dotted key path of the offending value
	// (e.g. "rules.no-console[0]", "overrides[1].files").
	Path string
	// Reason describes the violation.
	Reason string
}

func (e *MalformedConfigError) Error() string {
	msg := "malformed configuration"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg + ": " + e.Reason
}

// UnknownPresetError reports an extends entry with no known definition.
type UnknownPresetError struct {
	// ID is the preset identifier as written.
	ID string
	// ExtendedBy is the config or preset that referenced it.
	ExtendedBy string
}

func (e *UnknownPresetError) Error() string {
	if e.ExtendedBy != "" {
		return fmt.Sprintf("unknown preset %q (extended by %s)", e.ID, e.ExtendedBy)
	}
	return fmt.Sprintf("unknown preset %q", e.ID)
}

// GlobSyntaxError reports an override or ignore pattern that cannot be
// parsed.
type GlobSyntaxError struct {
	// Pattern is the pattern as written.
	Pattern string
	// Err is the underlying parse error.
	Err error
}

func (e *GlobSyntaxError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

func (e *GlobSyntaxError) Unwrap() error {
	return e.Err
}
