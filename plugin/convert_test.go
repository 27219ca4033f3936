package plugin

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jokarl/lintrc/lint"
)

func TestToProtoPreset(t *testing.T) {
	t.Run("nil preset", func(t *testing.T) {
		result, err := toProtoPreset(nil)
		if err != nil || result != nil {
			t.Errorf("toProtoPreset(nil) = %v, %v; want nil, nil", result, err)
		}
	})

	t.Run("wire shape", func(t *testing.T) {
		p, _ := testProvider().Preset("plugin:company/base")
		result, err := toProtoPreset(p)
		if err != nil {
			t.Fatalf("toProtoPreset() error = %v", err)
		}

		want := map[string]any{
			"id":      "plugin:company/base",
			"plugins": []any{"company"},
			"env":     map[string]any{"node": true},
			"rules": map[string]any{
				"company/no-todo": []any{"warn"},
				"no-console":      []any{"error", map[string]any{"allow": []any{"warn"}}},
			},
		}
		if diff := cmp.Diff(want, result.AsMap()); diff != "" {
			t.Errorf("toProtoPreset() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFromProtoPreset(t *testing.T) {
	t.Run("nil struct", func(t *testing.T) {
		result, err := fromProtoPreset(nil)
		if err != nil || result != nil {
			t.Errorf("fromProtoPreset(nil) = %v, %v; want nil, nil", result, err)
		}
	})

	for _, id := range testProvider().PresetNames() {
		t.Run(id, func(t *testing.T) {
			p, _ := testProvider().Preset(id)
			wire, err := toProtoPreset(p)
			if err != nil {
				t.Fatalf("toProtoPreset() error = %v", err)
			}
			got, err := fromProtoPreset(wire)
			if err != nil {
				t.Fatalf("fromProtoPreset() error = %v", err)
			}
			if diff := cmp.Diff(p, got); diff != "" {
				t.Errorf("preset changed on the wire (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromProtoPreset_Invalid(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
	}{
		{"bad severity", map[string]any{"id": "p", "rules": map[string]any{"eqeqeq": "loud"}}},
		{"unknown key", map[string]any{"id": "p", "rulez": map[string]any{}}},
		{"overrides", map[string]any{"id": "p", "overrides": []any{map[string]any{"files": "*.ts"}}}},
		{"root", map[string]any{"id": "p", "root": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := structpb.NewStruct(tt.m)
			if err != nil {
				t.Fatal(err)
			}
			_, err = fromProtoPreset(s)
			var malformed *lint.MalformedConfigError
			if !errors.As(err, &malformed) {
				t.Errorf("fromProtoPreset() error = %v, want MalformedConfigError", err)
			}
		})
	}
}
