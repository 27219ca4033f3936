// Package presets bundles the presets lintrc knows without loading any
// plugin: the core "eslint:" presets and the plugin bundles most
// TypeScript projects extend.
//
// The rule lists mirror the upstream presets at the listed versions. They
// carry severities and options only; rule implementations live elsewhere.
//
// Example:
//
//	registry := presets.Registry()
//	resolved, err := lint.NewResolver(registry).Resolve(cfg)
package presets

import (
	"github.com/jokarl/lintrc/lint"
)

var (
	offRule   = lint.RuleEntry{Severity: lint.Off}
	warnRule  = lint.RuleEntry{Severity: lint.Warn}
	errorRule = lint.RuleEntry{Severity: lint.Error}
)

// Providers returns a fresh copy of every built-in provider, core first.
func Providers() []lint.PresetProvider {
	return []lint.PresetProvider{
		ESLint(),
		TypeScriptESLint(),
		Import(),
		Prettier(),
		Security(),
		SonarJS(),
	}
}

// Registry returns a registry of every built-in provider.
func Registry() *lint.Registry {
	return lint.NewRegistry(Providers()...)
}

// ESLint returns the core presets "eslint:recommended" and "eslint:all".
func ESLint() *lint.BuiltinProvider {
	recommended := lint.RuleSet{
		"constructor-super":             errorRule,
		"for-direction":                 errorRule,
		"getter-return":                 errorRule,
		"no-async-promise-executor":     errorRule,
		"no-case-declarations":          errorRule,
		"no-class-assign":               errorRule,
		"no-compare-neg-zero":           errorRule,
		"no-cond-assign":                errorRule,
		"no-const-assign":               errorRule,
		"no-constant-condition":         errorRule,
		"no-control-regex":              errorRule,
		"no-debugger":                   errorRule,
		"no-delete-var":                 errorRule,
		"no-dupe-args":                  errorRule,
		"no-dupe-class-members":         errorRule,
		"no-dupe-else-if":               errorRule,
		"no-dupe-keys":                  errorRule,
		"no-duplicate-case":             errorRule,
		"no-empty":                      errorRule,
		"no-empty-character-class":      errorRule,
		"no-empty-pattern":              errorRule,
		"no-ex-assign":                  errorRule,
		"no-extra-boolean-cast":         errorRule,
		"no-fallthrough":                errorRule,
		"no-func-assign":                errorRule,
		"no-global-assign":              errorRule,
		"no-import-assign":              errorRule,
		"no-inner-declarations":         errorRule,
		"no-invalid-regexp":             errorRule,
		"no-irregular-whitespace":       errorRule,
		"no-loss-of-precision":          errorRule,
		"no-misleading-character-class": errorRule,
		"no-new-symbol":                 errorRule,
		"no-obj-calls":                  errorRule,
		"no-octal":                      errorRule,
		"no-prototype-builtins":         errorRule,
		"no-redeclare":                  errorRule,
		"no-regex-spaces":               errorRule,
		"no-self-assign":                errorRule,
		"no-setter-return":              errorRule,
		"no-shadow-restricted-names":    errorRule,
		"no-sparse-arrays":              errorRule,
		"no-this-before-super":          errorRule,
		"no-undef":                      errorRule,
		"no-unexpected-multiline":       errorRule,
		"no-unreachable":                errorRule,
		"no-unsafe-finally":             errorRule,
		"no-unsafe-negation":            errorRule,
		"no-unsafe-optional-chaining":   errorRule,
		"no-unused-labels":              errorRule,
		"no-unused-vars":                errorRule,
		"no-useless-backreference":      errorRule,
		"no-useless-catch":              errorRule,
		"no-useless-escape":             errorRule,
		"no-with":                       errorRule,
		"require-yield":                 errorRule,
		"use-isnan":                     errorRule,
		"valid-typeof":                  errorRule,
	}

	all := recommended.Clone()
	all.Apply(lint.RuleSet{
		"eqeqeq":          errorRule,
		"no-alert":        errorRule,
		"no-console":      errorRule,
		"no-eval":         errorRule,
		"no-implied-eval": errorRule,
		"no-var":          errorRule,
		"prefer-const":    errorRule,
		"curly":           errorRule,
		"default-case":    errorRule,
		"no-shadow":       errorRule,
	})

	return &lint.BuiltinProvider{
		Name:    "eslint",
		Version: "8.57.0",
		Presets: []*lint.Preset{
			{ID: "eslint:recommended", Rules: recommended},
			{ID: "eslint:all", Rules: all},
		},
	}
}

// TypeScriptESLint returns the "@typescript-eslint" plugin presets.
func TypeScriptESLint() *lint.BuiltinProvider {
	base := &lint.Preset{
		ID:      "plugin:@typescript-eslint/base",
		Parser:  "@typescript-eslint/parser",
		Plugins: []string{"@typescript-eslint"},
		ParserOptions: map[string]any{
			"sourceType": "module",
		},
	}
	eslintRecommended := &lint.Preset{
		ID: "plugin:@typescript-eslint/eslint-recommended",
		Rules: lint.RuleSet{
			"constructor-super":     offRule,
			"getter-return":         offRule,
			"no-const-assign":       offRule,
			"no-dupe-args":          offRule,
			"no-dupe-class-members": offRule,
			"no-dupe-keys":          offRule,
			"no-func-assign":        offRule,
			"no-import-assign":      offRule,
			"no-new-symbol":         offRule,
			"no-obj-calls":          offRule,
			"no-redeclare":          offRule,
			"no-setter-return":      offRule,
			"no-this-before-super":  offRule,
			"no-undef":              offRule,
			"no-unreachable":        offRule,
			"no-unsafe-negation":    offRule,
			"no-var":                errorRule,
			"prefer-const":          errorRule,
			"prefer-rest-params":    errorRule,
			"prefer-spread":         errorRule,
		},
	}
	recommended := &lint.Preset{
		ID:      "plugin:@typescript-eslint/recommended",
		Extends: []string{base.ID, eslintRecommended.ID},
		Rules: lint.RuleSet{
			"@typescript-eslint/ban-ts-comment":                      errorRule,
			"@typescript-eslint/ban-types":                           errorRule,
			"@typescript-eslint/no-array-constructor":                errorRule,
			"@typescript-eslint/no-duplicate-enum-values":            errorRule,
			"@typescript-eslint/no-explicit-any":                     errorRule,
			"@typescript-eslint/no-extra-non-null-assertion":         errorRule,
			"@typescript-eslint/no-loss-of-precision":                errorRule,
			"@typescript-eslint/no-misused-new":                      errorRule,
			"@typescript-eslint/no-namespace":                        errorRule,
			"@typescript-eslint/no-non-null-asserted-optional-chain": errorRule,
			"@typescript-eslint/no-this-alias":                       errorRule,
			"@typescript-eslint/no-unnecessary-type-constraint":      errorRule,
			"@typescript-eslint/no-unsafe-declaration-merging":       errorRule,
			"@typescript-eslint/no-unused-vars":                      errorRule,
			"@typescript-eslint/no-var-requires":                     errorRule,
			"@typescript-eslint/prefer-as-const":                     errorRule,
			"@typescript-eslint/triple-slash-reference":              errorRule,
			"no-array-constructor":                                   offRule,
			"no-loss-of-precision":                                   offRule,
			"no-unused-vars":                                         offRule,
		},
	}
	return &lint.BuiltinProvider{
		Name:    "@typescript-eslint",
		Version: "6.21.0",
		Presets: []*lint.Preset{base, eslintRecommended, recommended},
	}
}

// Import returns the "import" plugin presets.
func Import() *lint.BuiltinProvider {
	return &lint.BuiltinProvider{
		Name:    "import",
		Version: "2.29.1",
		Presets: []*lint.Preset{
			{
				ID:      "plugin:import/errors",
				Plugins: []string{"import"},
				Rules: lint.RuleSet{
					"import/no-unresolved": errorRule,
					"import/named":         errorRule,
					"import/namespace":     errorRule,
					"import/default":       errorRule,
					"import/export":        errorRule,
				},
			},
			{
				ID:      "plugin:import/warnings",
				Plugins: []string{"import"},
				Rules: lint.RuleSet{
					"import/no-named-as-default":        warnRule,
					"import/no-named-as-default-member": warnRule,
					"import/no-duplicates":              warnRule,
				},
			},
			{
				ID: "plugin:import/typescript",
				Settings: map[string]any{
					"import/extensions":              []any{".ts", ".tsx", ".js", ".jsx"},
					"import/external-module-folders": []any{"node_modules", "node_modules/@types"},
					"import/parsers": map[string]any{
						"@typescript-eslint/parser": []any{".ts", ".tsx"},
					},
					"import/resolver": map[string]any{
						"node": map[string]any{"extensions": []any{".ts", ".tsx", ".js", ".jsx"}},
					},
				},
				Rules: lint.RuleSet{
					"import/named": offRule,
				},
			},
		},
	}
}

// Prettier returns the "prettier" plugin preset, which also turns off the
// core formatting rules prettier owns.
func Prettier() *lint.BuiltinProvider {
	return &lint.BuiltinProvider{
		Name:    "prettier",
		Version: "5.1.3",
		Presets: []*lint.Preset{
			{
				ID:      "plugin:prettier/recommended",
				Plugins: []string{"prettier"},
				Rules: lint.RuleSet{
					"prettier/prettier":       errorRule,
					"arrow-body-style":        offRule,
					"prefer-arrow-callback":   offRule,
					"curly":                   offRule,
					"no-unexpected-multiline": offRule,
				},
			},
		},
	}
}

// Security returns the "security" plugin preset.
func Security() *lint.BuiltinProvider {
	return &lint.BuiltinProvider{
		Name:    "security",
		Version: "1.7.1",
		Presets: []*lint.Preset{
			{
				ID:      "plugin:security/recommended",
				Plugins: []string{"security"},
				Rules: lint.RuleSet{
					"security/detect-buffer-noassert":                warnRule,
					"security/detect-child-process":                  warnRule,
					"security/detect-disable-mustache-escape":        warnRule,
					"security/detect-eval-with-expression":           warnRule,
					"security/detect-new-buffer":                     warnRule,
					"security/detect-no-csrf-before-method-override": warnRule,
					"security/detect-non-literal-fs-filename":        warnRule,
					"security/detect-non-literal-regexp":             warnRule,
					"security/detect-non-literal-require":            warnRule,
					"security/detect-object-injection":               warnRule,
					"security/detect-possible-timing-attacks":        warnRule,
					"security/detect-pseudoRandomBytes":              warnRule,
					"security/detect-unsafe-regex":                   warnRule,
					"security/detect-bidi-characters":                warnRule,
				},
			},
		},
	}
}

// SonarJS returns the "sonarjs" plugin preset.
func SonarJS() *lint.BuiltinProvider {
	return &lint.BuiltinProvider{
		Name:    "sonarjs",
		Version: "0.23.0",
		Presets: []*lint.Preset{
			{
				ID:      "plugin:sonarjs/recommended",
				Plugins: []string{"sonarjs"},
				Rules: lint.RuleSet{
					"sonarjs/cognitive-complexity":         errorRule,
					"sonarjs/max-switch-cases":             errorRule,
					"sonarjs/no-all-duplicated-branches":   errorRule,
					"sonarjs/no-collapsible-if":            errorRule,
					"sonarjs/no-collection-size-mischeck":  errorRule,
					"sonarjs/no-duplicate-string":          errorRule,
					"sonarjs/no-duplicated-branches":       errorRule,
					"sonarjs/no-element-overwrite":         errorRule,
					"sonarjs/no-empty-collection":          errorRule,
					"sonarjs/no-extra-arguments":           errorRule,
					"sonarjs/no-identical-conditions":      errorRule,
					"sonarjs/no-identical-expressions":     errorRule,
					"sonarjs/no-identical-functions":       errorRule,
					"sonarjs/no-ignored-return":            errorRule,
					"sonarjs/no-inverted-boolean-check":    errorRule,
					"sonarjs/no-one-iteration-loop":        errorRule,
					"sonarjs/no-redundant-boolean":         errorRule,
					"sonarjs/no-redundant-jump":            errorRule,
					"sonarjs/no-same-line-conditional":     errorRule,
					"sonarjs/no-small-switch":              errorRule,
					"sonarjs/no-unused-collection":         errorRule,
					"sonarjs/no-use-of-empty-return-value": errorRule,
					"sonarjs/no-useless-catch":             errorRule,
					"sonarjs/non-existent-operator":        errorRule,
					"sonarjs/prefer-immediate-return":      errorRule,
					"sonarjs/prefer-object-literal":        errorRule,
					"sonarjs/prefer-single-boolean-return": errorRule,
					"sonarjs/prefer-while":                 errorRule,
				},
			},
		},
	}
}
