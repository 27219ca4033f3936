package helper

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jokarl/lintrc/lint"
)

// AssertRules compares expected and actual rule sets, options included.
// Nil and empty option lists are treated as equal.
//
// Example:
//
//	helper.AssertRules(t, lint.RuleSet{
//	    "no-console": {Severity: lint.Error},
//	}, resolved.RulesFor("src/index.ts"))
func AssertRules(t *testing.T, want, got lint.RuleSet) {
	t.Helper()

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
}

// AssertRuleSeverities checks the severity of each named rule and ignores
// options and every rule not named in want. A rule missing from got
// counts as off.
//
// Example:
//
//	helper.AssertRuleSeverities(t, map[string]lint.Severity{
//	    "@typescript-eslint/no-explicit-any": lint.Off,
//	}, resolved.RulesFor("src/index.test.ts"))
func AssertRuleSeverities(t *testing.T, want map[string]lint.Severity, got lint.RuleSet) {
	t.Helper()

	actual := make(map[string]lint.Severity, len(want))
	for name := range want {
		actual[name] = got[name].Severity
	}
	if diff := cmp.Diff(want, actual); diff != "" {
		t.Errorf("rule severities mismatch (-want +got):\n%s", diff)
	}
}

// AssertEnabled verifies exactly which rules are enabled, ignoring order.
func AssertEnabled(t *testing.T, want []string, got lint.RuleSet) {
	t.Helper()

	sorted := append([]string(nil), want...)
	sort.Strings(sorted)
	if diff := cmp.Diff(sorted, got.Enabled(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("enabled rules mismatch (-want +got):\n%s", diff)
	}
}
