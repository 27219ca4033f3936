package lint

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Resolver flattens a Config and the presets it extends into a Resolved
// configuration.
//
// Example:
//
//	r := lint.NewResolver(registry)
//	resolved, err := r.Resolve(cfg)
//	if err != nil {
//	    return err
//	}
//	rules := resolved.RulesFor("src/foo.test.ts")
type Resolver struct {
	// Source looks up extends entries. A nil Source knows no presets.
	Source PresetSource
	// RequirePlugins rejects namespaced rules whose plugin is not declared
	// by the configuration or any preset it extends.
	RequirePlugins bool
	// Logger receives debug output. Defaults to a null logger.
	Logger hclog.Logger
}

// NewResolver returns a Resolver looking presets up in source.
func NewResolver(source PresetSource) *Resolver {
	return &Resolver{Source: source}
}

// layer accumulates everything presets and configs contribute.
type layer struct {
	rules         RuleSet
	env           map[string]bool
	plugins       []string
	parser        string
	parserOptions map[string]any
	settings      map[string]any
}

func newLayer() *layer {
	return &layer{rules: RuleSet{}}
}

func (l *layer) applyPreset(p *Preset) {
	l.rules.Apply(p.Rules)
	l.env = mergeEnv(l.env, p.Env)
	l.plugins = appendUnique(l.plugins, p.Plugins...)
	if p.Parser != "" {
		l.parser = p.Parser
	}
	l.parserOptions = mergeSettings(l.parserOptions, p.ParserOptions)
	l.settings = mergeSettings(l.settings, p.Settings)
}

// Resolve merges the presets named in cfg.Extends, left to right, and then
// the local rules of cfg. For every rule name the rightmost definition
// wins, whatever its severity. Overrides are compiled but not applied;
// use RulesFor or ConfigFor on the result.
//
// Resolve does not modify cfg and returns an equal result every time it is
// called with the same input.
func (r *Resolver) Resolve(cfg *Config) (*Resolved, error) {
	if cfg == nil {
		return nil, &MalformedConfigError{Reason: "configuration is nil"}
	}
	logger := r.logger()

	base := newLayer()
	if err := r.expand(base, cfg.Extends, describeSource(cfg), nil); err != nil {
		return nil, err
	}
	base.applyPreset(&Preset{
		Env:           cfg.Env,
		Plugins:       cfg.Plugins,
		Parser:        cfg.Parser,
		ParserOptions: cfg.ParserOptions,
		Settings:      cfg.Settings,
		Rules:         cfg.Rules,
	})
	logger.Debug("resolved base rules", "source", describeSource(cfg), "presets", len(cfg.Extends), "rules", len(base.rules))

	res := &Resolved{
		source:        cfg.Source,
		baseDir:       cfg.BaseDir,
		rules:         base.rules,
		env:           base.env,
		globals:       copyStrings(cfg.Globals),
		plugins:       base.plugins,
		parser:        base.parser,
		parserOptions: base.parserOptions,
		settings:      base.settings,
	}

	for i, o := range cfg.Overrides {
		ro, err := r.resolveOverride(cfg, i, o)
		if err != nil {
			return nil, err
		}
		res.plugins = appendUnique(res.plugins, ro.plugins...)
		res.overrides = append(res.overrides, ro)
	}

	ignore, err := NewIgnoreMatcher(cfg.IgnorePatterns)
	if err != nil {
		return nil, err
	}
	res.ignore = ignore

	if r.RequirePlugins {
		if err := res.checkPlugins(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// expand applies the presets named in ids to l, parents first. stack holds
// the identifiers currently being expanded and detects cycles.
func (r *Resolver) expand(l *layer, ids []string, extendedBy string, stack []string) error {
	for _, id := range ids {
		for _, seen := range stack {
			if seen == id {
				return &MalformedConfigError{
					Path:   "extends",
					Reason: fmt.Sprintf("preset cycle: %s -> %s", strings.Join(stack, " -> "), id),
				}
			}
		}
		preset, err := r.lookup(id, extendedBy)
		if err != nil {
			return err
		}
		if err := r.expand(l, preset.Extends, id, append(stack, id)); err != nil {
			return err
		}
		r.logger().Trace("applying preset", "id", id, "rules", len(preset.Rules))
		l.applyPreset(preset)
	}
	return nil
}

func (r *Resolver) lookup(id, extendedBy string) (*Preset, error) {
	if r.Source == nil {
		return nil, &UnknownPresetError{ID: id, ExtendedBy: extendedBy}
	}
	preset, err := r.Source.Preset(id)
	if err != nil {
		var unknown *UnknownPresetError
		if errors.As(err, &unknown) && unknown.ExtendedBy == "" {
			return nil, &UnknownPresetError{ID: unknown.ID, ExtendedBy: extendedBy}
		}
		return nil, err
	}
	return preset, nil
}

func (r *Resolver) resolveOverride(cfg *Config, i int, o Override) (*resolvedOverride, error) {
	at := fmt.Sprintf("overrides[%d]", i)
	if len(o.Files) == 0 {
		return nil, &MalformedConfigError{Source: cfg.Source, Path: at + ".files", Reason: "at least one pattern is required"}
	}
	files, err := CompilePatterns(o.Files)
	if err != nil {
		return nil, err
	}
	excluded, err := CompilePatterns(o.ExcludedFiles)
	if err != nil {
		return nil, err
	}

	delta := newLayer()
	if err := r.expand(delta, o.Extends, describeSource(cfg)+" "+at, nil); err != nil {
		return nil, err
	}
	delta.applyPreset(&Preset{Env: o.Env, Settings: o.Settings, Rules: o.Rules})

	return &resolvedOverride{
		index:    i,
		files:    files,
		excluded: excluded,
		rules:    delta.rules,
		env:      delta.env,
		settings: delta.settings,
		plugins:  delta.plugins,
	}, nil
}

func (r *Resolver) logger() hclog.Logger {
	if r.Logger == nil {
		return hclog.NewNullLogger()
	}
	return r.Logger
}

func describeSource(cfg *Config) string {
	if cfg.Source != "" {
		return cfg.Source
	}
	return "configuration"
}

func copyStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type resolvedOverride struct {
	index    int
	files    []*Pattern
	excluded []*Pattern
	rules    RuleSet
	env      map[string]bool
	settings map[string]any
	plugins  []string
}

func (o *resolvedOverride) matches(relPath string) bool {
	if outsideBase(relPath) {
		return false
	}
	for _, p := range o.excluded {
		if p.Match(relPath) {
			return false
		}
	}
	for _, p := range o.files {
		if p.Match(relPath) {
			return true
		}
	}
	return false
}

// Resolved is a flattened configuration. It is immutable and safe for
// concurrent use; every accessor returns a copy.
type Resolved struct {
	source        string
	baseDir       string
	rules         RuleSet
	env           map[string]bool
	globals       map[string]string
	plugins       []string
	parser        string
	parserOptions map[string]any
	settings      map[string]any
	overrides     []*resolvedOverride
	ignore        *IgnoreMatcher
}

// Source returns the file the configuration was loaded from.
func (r *Resolved) Source() string {
	return r.source
}

// Rules returns the base rule set, before any override.
func (r *Resolved) Rules() RuleSet {
	return r.rules.Clone()
}

// Plugins returns every plugin declared by the configuration, its presets
// and its overrides.
func (r *Resolved) Plugins() []string {
	return append([]string(nil), r.plugins...)
}

// RulesFor returns the effective rule set for a file path. Overrides whose
// patterns match are applied in declaration order, so the later override
// wins on a shared rule. Without a matching override the base set is
// returned unchanged. A path outside the base directory matches no
// override.
func (r *Resolved) RulesFor(filePath string) RuleSet {
	rel := r.relPath(filePath)
	rules := r.rules.Clone()
	for _, o := range r.overrides {
		if o.matches(rel) {
			rules.Apply(o.rules)
		}
	}
	return rules
}

// ConfigFor returns the effective configuration for a file path.
func (r *Resolved) ConfigFor(filePath string) *FileConfig {
	rel := r.relPath(filePath)
	fc := &FileConfig{
		Path:          rel,
		Env:           mergeEnv(nil, r.env),
		Globals:       copyStrings(r.globals),
		Parser:        r.parser,
		ParserOptions: cloneMap(r.parserOptions),
		Plugins:       r.Plugins(),
		Rules:         r.rules.Clone(),
		Settings:      cloneMap(r.settings),
	}
	for _, o := range r.overrides {
		if !o.matches(rel) {
			continue
		}
		fc.Rules.Apply(o.rules)
		fc.Env = mergeEnv(fc.Env, o.env)
		fc.Settings = mergeSettings(fc.Settings, o.settings)
	}
	return fc
}

// MatchingOverrides returns the indexes of the overrides that apply to a
// file path, in declaration order.
func (r *Resolved) MatchingOverrides(filePath string) []int {
	rel := r.relPath(filePath)
	var idx []int
	for _, o := range r.overrides {
		if o.matches(rel) {
			idx = append(idx, o.index)
		}
	}
	return idx
}

// IsIgnored reports whether the ignore patterns exclude a file path. Paths
// outside the base directory are never ignored.
func (r *Resolved) IsIgnored(filePath string) bool {
	rel := r.relPath(filePath)
	if outsideBase(rel) {
		return false
	}
	return r.ignore.Ignored(rel)
}

// relPath converts a path to the slash-separated form relative to the base
// directory.
func (r *Resolved) relPath(p string) string {
	trailing := strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator))
	if filepath.IsAbs(p) && r.baseDir != "" {
		if rel, err := filepath.Rel(r.baseDir, p); err == nil {
			p = rel
		}
	}
	p = cleanRel(filepath.ToSlash(p))
	if trailing && p != "" {
		p += "/"
	}
	return p
}

// outsideBase reports whether a relative path climbs out of the base
// directory. Overrides and ignore patterns do not govern such paths.
func outsideBase(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, "../")
}

func (r *Resolved) checkPlugins() error {
	declared := make(map[string]bool, len(r.plugins))
	for _, p := range r.plugins {
		declared[PluginNamespace(p)] = true
	}
	check := func(prefix string, rules RuleSet) error {
		for _, name := range rules.Names() {
			ns := RuleNamespace(name)
			if ns != "" && !declared[ns] {
				return &MalformedConfigError{
					Source: r.source,
					Path:   prefix + "rules." + name,
					Reason: fmt.Sprintf("plugin %q is not declared", ns),
				}
			}
		}
		return nil
	}
	if err := check("", r.rules); err != nil {
		return err
	}
	for _, o := range r.overrides {
		if err := check(fmt.Sprintf("overrides[%d].", o.index), o.rules); err != nil {
			return err
		}
	}
	return nil
}
