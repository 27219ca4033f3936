package lint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestProvider(name string, presets ...*Preset) *BuiltinProvider {
	return &BuiltinProvider{Name: name, Version: "1.0.0", Presets: presets}
}

func TestBuiltinProvider_Metadata(t *testing.T) {
	p := newTestProvider("import",
		&Preset{ID: "plugin:import/errors"},
		&Preset{ID: "plugin:import/warnings"},
	)

	if got := p.ProviderName(); got != "import" {
		t.Errorf("ProviderName() = %q, want %q", got, "import")
	}
	if got := p.ProviderVersion(); got != "1.0.0" {
		t.Errorf("ProviderVersion() = %q, want %q", got, "1.0.0")
	}
	want := []string{"plugin:import/errors", "plugin:import/warnings"}
	if diff := cmp.Diff(want, p.PresetNames()); diff != "" {
		t.Errorf("PresetNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinProvider_Preset(t *testing.T) {
	errorsPreset := &Preset{ID: "plugin:import/errors"}
	p := newTestProvider("import", errorsPreset)

	got, err := p.Preset("plugin:import/errors")
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	if got != errorsPreset {
		t.Error("Preset() returned a different preset")
	}

	_, err = p.Preset("plugin:import/missing")
	var unknown *UnknownPresetError
	if !errors.As(err, &unknown) || unknown.ID != "plugin:import/missing" {
		t.Errorf("Preset(missing) error = %v, want UnknownPresetError", err)
	}
}

func TestRegistry_FirstProviderWins(t *testing.T) {
	first := &Preset{ID: "shared", Rules: RuleSet{"a": {Severity: Warn}}}
	second := &Preset{ID: "shared", Rules: RuleSet{"a": {Severity: Error}}}
	r := NewRegistry(newTestProvider("one", first), newTestProvider("two", second))

	got, err := r.Preset("shared")
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	if got != first {
		t.Error("Preset() should return the first provider's preset")
	}
}

func TestRegistry_Unknown(t *testing.T) {
	r := NewRegistry(newTestProvider("one"))
	_, err := r.Preset("nope")
	var unknown *UnknownPresetError
	if !errors.As(err, &unknown) {
		t.Fatalf("Preset() error = %v, want UnknownPresetError", err)
	}
	if unknown.ID != "nope" {
		t.Errorf("ID = %q, want %q", unknown.ID, "nope")
	}
}

type failingSource struct{}

func (failingSource) Preset(id string) (*Preset, error) {
	return nil, fmt.Errorf("disk on fire")
}

func TestRegistry_SourceErrorIsNotUnknown(t *testing.T) {
	r := NewRegistry()
	r.AddSource(failingSource{})

	_, err := r.Preset("x")
	if err == nil {
		t.Fatal("Preset() error = nil, want error")
	}
	var unknown *UnknownPresetError
	if errors.As(err, &unknown) {
		t.Errorf("Preset() error = %v, should not be UnknownPresetError", err)
	}
}

func TestRegistry_PresetNames(t *testing.T) {
	r := NewRegistry(
		newTestProvider("a", &Preset{ID: "x"}, &Preset{ID: "y"}),
		newTestProvider("b", &Preset{ID: "y"}, &Preset{ID: "z"}),
	)
	if diff := cmp.Diff([]string{"x", "y", "z"}, r.PresetNames()); diff != "" {
		t.Errorf("PresetNames() mismatch (-want +got):\n%s", diff)
	}
	if got := len(r.Providers()); got != 2 {
		t.Errorf("Providers() length = %d, want 2", got)
	}
}
