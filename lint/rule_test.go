package lint

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRuleEntry(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  RuleEntry
	}{
		{
			name:  "bare word",
			input: "error",
			want:  RuleEntry{Severity: Error},
		},
		{
			name:  "bare number",
			input: 0,
			want:  RuleEntry{Severity: Off},
		},
		{
			name:  "list without options",
			input: []any{"warn"},
			want:  RuleEntry{Severity: Warn},
		},
		{
			name:  "list with options",
			input: []any{"error", map[string]any{"allow": []any{"warn", "error", "info"}}},
			want: RuleEntry{
				Severity: Error,
				Options:  []any{map[string]any{"allow": []any{"warn", "error", "info"}}},
			},
		},
		{
			name:  "numeric option normalized",
			input: []any{"error", 15},
			want:  RuleEntry{Severity: Error, Options: []any{float64(15)}},
		},
		{
			name:  "yaml style map keys",
			input: []any{2, map[any]any{"max": 3}},
			want:  RuleEntry{Severity: Error, Options: []any{map[string]any{"max": float64(3)}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRuleEntry(tt.input)
			if err != nil {
				t.Fatalf("ParseRuleEntry() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseRuleEntry() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRuleEntry_Invalid(t *testing.T) {
	inputs := []any{[]any{}, []any{"loud"}, "loud", map[string]any{"severity": "error"}}
	for _, input := range inputs {
		if _, err := ParseRuleEntry(input); err == nil {
			t.Errorf("ParseRuleEntry(%#v) error = nil, want error", input)
		}
	}
}

func TestRuleEntry_MarshalJSON(t *testing.T) {
	rules := RuleSet{
		"no-debugger":                  {Severity: Error},
		"sonarjs/cognitive-complexity": {Severity: Error, Options: []any{float64(15)}},
	}
	data, err := json.Marshal(rules)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"no-debugger":"error","sonarjs/cognitive-complexity":["error",15]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestRuleSet_Apply(t *testing.T) {
	base := RuleSet{
		"no-console":  {Severity: Warn},
		"no-debugger": {Severity: Error},
	}
	base.Apply(RuleSet{
		"no-console": {Severity: Off},
		"no-alert":   {Severity: Error},
	})

	want := RuleSet{
		"no-console":  {Severity: Off},
		"no-debugger": {Severity: Error},
		"no-alert":    {Severity: Error},
	}
	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
}

func TestRuleSet_CloneIsDeep(t *testing.T) {
	opts := map[string]any{"allow": []any{"warn"}}
	orig := RuleSet{"no-console": {Severity: Error, Options: []any{opts}}}

	clone := orig.Clone()
	clone["no-console"].Options[0].(map[string]any)["allow"] = []any{"error"}
	clone["extra"] = RuleEntry{Severity: Warn}

	if _, ok := orig["extra"]; ok {
		t.Error("adding to the clone changed the original")
	}
	got := orig["no-console"].Options[0].(map[string]any)["allow"]
	if diff := cmp.Diff([]any{"warn"}, got); diff != "" {
		t.Errorf("original options changed (-want +got):\n%s", diff)
	}
}

func TestRuleSet_NamesAndEnabled(t *testing.T) {
	rs := RuleSet{
		"b": {Severity: Off},
		"a": {Severity: Warn},
		"c": {Severity: Error},
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, rs.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "c"}, rs.Enabled()); diff != "" {
		t.Errorf("Enabled() mismatch (-want +got):\n%s", diff)
	}
}

func TestRuleNamespace(t *testing.T) {
	tests := map[string]string{
		"no-console":                         "",
		"import/order":                       "import",
		"@typescript-eslint/no-explicit-any": "@typescript-eslint",
		"@scope/plugin/rule":                 "@scope/plugin",
		"no-unsanitized/method":              "no-unsanitized",
	}
	for name, want := range tests {
		if got := RuleNamespace(name); got != want {
			t.Errorf("RuleNamespace(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestPluginNamespace(t *testing.T) {
	tests := map[string]string{
		"import":                   "import",
		"eslint-plugin-import":     "import",
		"@typescript-eslint":       "@typescript-eslint",
		"@scope/eslint-plugin-foo": "@scope/foo",
		"@scope/eslint-plugin":     "@scope",
		"@scope/foo":               "@scope/foo",
	}
	for plugin, want := range tests {
		if got := PluginNamespace(plugin); got != want {
			t.Errorf("PluginNamespace(%q) = %q, want %q", plugin, got, want)
		}
	}
}
