package lint

// Config is a declarative lint configuration as loaded from a file.
// It is built once at load time and treated as read-only afterwards.
type Config struct {
	// Source is the file the configuration was read from. Empty for
	// configurations built in code.
	Source string
	// BaseDir is the directory override and ignore patterns are relative to.
	BaseDir string

	// Root stops the search for configurations in parent directories.
	Root bool
	// Env enables or disables predefined environments (e.g. "browser").
	Env map[string]bool
	// Globals declares global variables as "readonly", "writable" or "off".
	Globals map[string]string
	// Extends lists preset identifiers, applied left to right.
	Extends []string
	// Parser names the parser module.
	Parser string
	// ParserOptions are passed to the parser unchanged.
	ParserOptions map[string]any
	// Plugins lists plugin names whose rules may be configured.
	Plugins []string
	// Rules are the local rule definitions. They take precedence over
	// every preset.
	Rules RuleSet
	// Settings is shared data for plugins, passed through unchanged.
	Settings map[string]any
	// Overrides are path-scoped deltas, in declaration order.
	Overrides []Override
	// IgnorePatterns are gitignore-style patterns of paths to skip.
	IgnorePatterns []string
}

// Override is a rule delta applied only to files matching its patterns.
type Override struct {
	// Files are the glob patterns a path must match (any of them).
	Files []string
	// ExcludedFiles are glob patterns that veto a match.
	ExcludedFiles []string
	// Extends lists presets layered before the override's own rules.
	Extends []string
	// Rules is the rule delta.
	Rules RuleSet
	// Env is the environment delta.
	Env map[string]bool
	// Settings is the settings delta, merged by top-level key.
	Settings map[string]any
}

// Preset is a named, predefined bundle of configuration that a Config can
// extend.
type Preset struct {
	// ID is the identifier used in extends lists
	// (e.g. "eslint:recommended", "plugin:import/errors").
	ID string
	// Extends lists presets this one builds on.
	Extends []string
	// Env is merged into the resolved environment.
	Env map[string]bool
	// Plugins are added to the resolved plugin list.
	Plugins []string
	// Parser is used unless the configuration names its own.
	Parser string
	// ParserOptions are merged by top-level key.
	ParserOptions map[string]any
	// Settings are merged by top-level key.
	Settings map[string]any
	// Rules are the preset's rule definitions.
	Rules RuleSet
}

// FileConfig is the effective configuration for one file path.
type FileConfig struct {
	// Path is the path as matched, relative to the base directory.
	Path string
	// Env is the effective environment.
	Env map[string]bool
	// Globals are the declared globals.
	Globals map[string]string
	// Parser is the effective parser.
	Parser string
	// ParserOptions are the effective parser options.
	ParserOptions map[string]any
	// Plugins are all declared plugins.
	Plugins []string
	// Rules is the effective rule set.
	Rules RuleSet
	// Settings is the effective shared settings.
	Settings map[string]any
}
