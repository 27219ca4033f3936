package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

var project = map[string]string{
	".eslintrc.json": `{
  "root": true,
  "extends": ["./base.json"],
  "env": {"node": true},
  "rules": {"eqeqeq": ["error", "always"]},
  "overrides": [
    {"files": ["*.test.js"], "env": {"jest": true}, "rules": {"eqeqeq": "off"}},
    {"files": ["src/legacy/**"], "rules": {"no-var": "off"}}
  ],
  "ignorePatterns": ["dist/"]
}`,
	"base.json": `{"rules": {"no-var": "warn", "no-console": "error"}}`,
}

func TestValidate(t *testing.T) {
	dir := writeFiles(t, project)
	config := filepath.Join(dir, ".eslintrc.json")

	stdout, _, err := run(t, "validate", config)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	want := config + ": ok (3 rules, 2 overrides)\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantOut string
	}{
		{
			name:    "malformed severity",
			files:   map[string]string{".eslintrc.json": `{"rules": {"no-var": "loud"}}`},
			wantOut: "at rules.no-var",
		},
		{
			name:    "unknown preset",
			files:   map[string]string{".eslintrc.json": `{"extends": ["plugin:nope/recommended"]}`},
			wantOut: `unknown preset "plugin:nope/recommended"`,
		},
		{
			name:    "bad glob",
			files:   map[string]string{".eslintrc.json": `{"overrides": [{"files": ["src/[a-"], "rules": {}}]}`},
			wantOut: `invalid glob pattern "src/[a-"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)

			stdout, stderr, err := run(t, "validate", filepath.Join(dir, ".eslintrc.json"))
			if err == nil {
				t.Fatal("validate should fail")
			}
			if !strings.Contains(stdout, tt.wantOut) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantOut)
			}
			if !strings.Contains(stderr, "1 of 1 configurations are invalid") {
				t.Errorf("stderr = %q, want the summary error", stderr)
			}
		})
	}
}

type report struct {
	Path             string          `json:"path"`
	Ignored          bool            `json:"ignored"`
	MatchedOverrides []int           `json:"matchedOverrides"`
	Env              map[string]bool `json:"env"`
	Rules            map[string]any  `json:"rules"`
}

func printConfig(t *testing.T, dir, file string) report {
	t.Helper()

	stdout, stderr, err := run(t, "print-config", "--config", filepath.Join(dir, ".eslintrc.json"), filepath.Join(dir, filepath.FromSlash(file)))
	if err != nil {
		t.Fatalf("print-config error = %v (stderr %q)", err, stderr)
	}
	var got report
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("print-config output is not JSON: %v\n%s", err, stdout)
	}
	return got
}

func TestPrintConfig(t *testing.T) {
	dir := writeFiles(t, project)

	tests := []struct {
		file string
		want report
	}{
		{
			file: "src/index.js",
			want: report{
				Path:             "src/index.js",
				MatchedOverrides: []int{},
				Env:              map[string]bool{"node": true},
				Rules: map[string]any{
					"eqeqeq":     []any{"error", "always"},
					"no-console": "error",
					"no-var":     "warn",
				},
			},
		},
		{
			file: "src/legacy/util.test.js",
			want: report{
				Path:             "src/legacy/util.test.js",
				MatchedOverrides: []int{0, 1},
				Env:              map[string]bool{"node": true, "jest": true},
				Rules: map[string]any{
					"eqeqeq":     "off",
					"no-console": "error",
					"no-var":     "off",
				},
			},
		},
		{
			file: "dist/bundle.js",
			want: report{
				Path:             "dist/bundle.js",
				Ignored:          true,
				MatchedOverrides: []int{},
				Env:              map[string]bool{"node": true},
				Rules: map[string]any{
					"eqeqeq":     []any{"error", "always"},
					"no-console": "error",
					"no-var":     "warn",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got := printConfig(t, dir, tt.file)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("print-config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintConfig_NeedsPath(t *testing.T) {
	if _, _, err := run(t, "print-config"); err == nil {
		t.Error("print-config without a path should fail")
	}
}

func TestPresets(t *testing.T) {
	stdout, _, err := run(t, "presets")
	if err != nil {
		t.Fatalf("presets error = %v", err)
	}
	for _, want := range []string{
		"eslint 8.57.0\n  eslint:recommended\n  eslint:all\n",
		"@typescript-eslint 6.21.0\n",
		"  plugin:import/typescript\n",
		"sonarjs 0.23.0\n  plugin:sonarjs/recommended\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("presets output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "loud", "presets")
	if err == nil {
		t.Fatal("an invalid log level should fail")
	}
	if !strings.Contains(stderr, `invalid --log-level "loud"`) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRoot_MissingPlugin(t *testing.T) {
	_, _, err := run(t, "--plugin", filepath.Join(t.TempDir(), "missing"), "presets")
	if err == nil {
		t.Error("a missing plugin binary should fail")
	}
}
