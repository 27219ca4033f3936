package presets

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jokarl/lintrc/lint"
)

func TestRegistry_ExtendsResolve(t *testing.T) {
	registry := Registry()
	for _, id := range registry.PresetNames() {
		t.Run(id, func(t *testing.T) {
			cfg := &lint.Config{Extends: []string{id}}
			if _, err := lint.NewResolver(registry).Resolve(cfg); err != nil {
				t.Errorf("Resolve(%s) error = %v", id, err)
			}
		})
	}
}

func TestRegistry_PresetNames(t *testing.T) {
	want := []string{
		"eslint:recommended",
		"eslint:all",
		"plugin:@typescript-eslint/base",
		"plugin:@typescript-eslint/eslint-recommended",
		"plugin:@typescript-eslint/recommended",
		"plugin:import/errors",
		"plugin:import/warnings",
		"plugin:import/typescript",
		"plugin:prettier/recommended",
		"plugin:security/recommended",
		"plugin:sonarjs/recommended",
	}
	if diff := cmp.Diff(want, Registry().PresetNames()); diff != "" {
		t.Errorf("PresetNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_UnknownPreset(t *testing.T) {
	_, err := Registry().Preset("plugin:react/recommended")
	var unknown *lint.UnknownPresetError
	if !errors.As(err, &unknown) {
		t.Fatalf("Preset() error = %v, want UnknownPresetError", err)
	}
}

func TestESLint_AllIncludesRecommended(t *testing.T) {
	p := ESLint()
	recommended, _ := p.Preset("eslint:recommended")
	all, _ := p.Preset("eslint:all")
	for name, entry := range recommended.Rules {
		if got, ok := all.Rules[name]; !ok || got.Severity != entry.Severity {
			t.Errorf("eslint:all[%s] = %v, want %v", name, got, entry)
		}
	}
	if _, ok := recommended.Rules["no-console"]; ok {
		t.Error("eslint:recommended should not configure no-console")
	}
}

func TestTypeScriptRecommended_ReplacesCoreRules(t *testing.T) {
	cfg := &lint.Config{Extends: []string{"eslint:recommended", "plugin:@typescript-eslint/recommended"}}
	resolved, err := lint.NewResolver(Registry()).Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	rules := resolved.Rules()
	tests := map[string]lint.Severity{
		"no-unused-vars":                    lint.Off,
		"no-undef":                          lint.Off,
		"@typescript-eslint/no-unused-vars": lint.Error,
		"no-debugger":                       lint.Error,
		"no-var":                            lint.Error,
	}
	for name, want := range tests {
		if got := rules[name].Severity; got != want {
			t.Errorf("rules[%s] = %v, want %v", name, got, want)
		}
	}

	fc := resolved.ConfigFor("src/index.ts")
	if fc.Parser != "@typescript-eslint/parser" {
		t.Errorf("Parser = %q, want @typescript-eslint/parser", fc.Parser)
	}
	if diff := cmp.Diff([]string{"@typescript-eslint"}, fc.Plugins); diff != "" {
		t.Errorf("Plugins mismatch (-want +got):\n%s", diff)
	}
}

// The configuration most projects in the wild ship: every bundled preset,
// local rules on top and a test-file override.
func TestProjectConfiguration(t *testing.T) {
	cfg := &lint.Config{
		Extends: []string{
			"eslint:recommended",
			"plugin:@typescript-eslint/recommended",
			"plugin:import/errors",
			"plugin:import/warnings",
			"plugin:import/typescript",
			"plugin:prettier/recommended",
			"plugin:security/recommended",
			"plugin:sonarjs/recommended",
		},
		Plugins: []string{"@typescript-eslint", "import", "prettier", "security", "sonarjs", "no-secrets", "no-unsanitized"},
		Rules: lint.RuleSet{
			"@typescript-eslint/no-explicit-any": {Severity: lint.Error},
			"security/detect-object-injection":   {Severity: lint.Off},
			"sonarjs/cognitive-complexity":       {Severity: lint.Error, Options: []any{float64(15)}},
			"sonarjs/no-duplicate-string":        {Severity: lint.Error, Options: []any{float64(3)}},
		},
		Overrides: []lint.Override{
			{
				Files: []string{"*.test.ts", "*.test.tsx", "*.spec.ts", "*.spec.tsx"},
				Rules: lint.RuleSet{
					"sonarjs/no-duplicate-string":        {Severity: lint.Off},
					"@typescript-eslint/no-explicit-any": {Severity: lint.Off},
				},
			},
		},
	}

	r := &lint.Resolver{Source: Registry(), RequirePlugins: true}
	resolved, err := r.Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	app := resolved.RulesFor("src/app.ts")
	if got := app["@typescript-eslint/no-explicit-any"].Severity; got != lint.Error {
		t.Errorf("app.ts no-explicit-any = %v, want error", got)
	}
	if got := app["security/detect-object-injection"].Severity; got != lint.Off {
		t.Errorf("app.ts detect-object-injection = %v, want off", got)
	}
	if got := app["import/named"].Severity; got != lint.Off {
		t.Errorf("app.ts import/named = %v, want off (plugin:import/typescript comes later)", got)
	}
	if diff := cmp.Diff([]any{float64(15)}, app["sonarjs/cognitive-complexity"].Options); diff != "" {
		t.Errorf("cognitive-complexity options mismatch (-want +got):\n%s", diff)
	}

	test := resolved.RulesFor("src/app.test.ts")
	if got := test["@typescript-eslint/no-explicit-any"].Severity; got != lint.Off {
		t.Errorf("app.test.ts no-explicit-any = %v, want off", got)
	}
	if got := test["sonarjs/no-duplicate-string"].Severity; got != lint.Off {
		t.Errorf("app.test.ts no-duplicate-string = %v, want off", got)
	}
	if got := test["sonarjs/cognitive-complexity"].Severity; got != lint.Error {
		t.Errorf("app.test.ts cognitive-complexity = %v, want error", got)
	}
}
