// Package helper provides testing utilities for lintrc configurations and
// preset providers. Use TestConfig to resolve a configuration tree without
// touching the working directory.
//
// Example:
//
//	func TestProjectRules(t *testing.T) {
//	    resolved := helper.TestConfig(t, map[string]string{
//	        ".eslintrc.yaml": "extends: [eslint:recommended]\nrules:\n  no-console: error\n",
//	    }, ".eslintrc.yaml")
//
//	    helper.AssertRuleSeverities(t, map[string]lint.Severity{
//	        "no-console":  lint.Error,
//	        "no-debugger": lint.Error,
//	    }, resolved.RulesFor("src/index.ts"))
//	}
package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jokarl/lintrc/lint"
	"github.com/jokarl/lintrc/loader"
	"github.com/jokarl/lintrc/presets"
)

// TestConfig writes files into a temporary directory, loads entry from it
// and resolves the result. Extends entries are looked up in providers
// first, then in the built-in presets, then as files relative to the
// entry file. Any failure stops the test.
//
// Example:
//
//	resolved := helper.TestConfig(t,
//	    map[string]string{
//	        ".eslintrc.json": `{"extends": ["./base.json"], "rules": {"eqeqeq": "off"}}`,
//	        "base.json":      `{"rules": {"eqeqeq": "error", "no-var": "error"}}`,
//	    },
//	    ".eslintrc.json",
//	)
func TestConfig(t *testing.T, files map[string]string, entry string, providers ...lint.PresetProvider) *lint.Resolved {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("failed to create directory for %s: %s", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %s", name, err)
		}
	}

	l := loader.New()
	cfg, err := l.LoadFile(filepath.Join(dir, filepath.FromSlash(entry)))
	if err != nil {
		t.Fatalf("failed to load %s: %s", entry, err)
	}

	resolved, err := lint.NewResolver(TestRegistry(cfg.BaseDir, providers...)).Resolve(cfg)
	if err != nil {
		t.Fatalf("failed to resolve %s: %s", entry, err)
	}
	return resolved
}

// TestRegistry returns a registry consulting providers, then the built-in
// presets, then preset files relative to baseDir.
func TestRegistry(baseDir string, providers ...lint.PresetProvider) *lint.Registry {
	registry := lint.NewRegistry(providers...)
	for _, p := range presets.Providers() {
		registry.Register(p)
	}
	registry.AddSource(loader.NewFileSource(baseDir, nil))
	return registry
}
