package lint

import (
	"encoding/json"
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Off, "off"},
		{Warn, "warn"},
		{Error, "error"},
		{Severity(7), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverity_Values(t *testing.T) {
	// Numeric values match the 0/1/2 form accepted in configuration files.
	if Off != 0 {
		t.Errorf("Off = %d, want 0", Off)
	}
	if Warn != 1 {
		t.Errorf("Warn = %d, want 1", Warn)
	}
	if Error != 2 {
		t.Errorf("Error = %d, want 2", Error)
	}
}

func TestSeverity_Enabled(t *testing.T) {
	if Off.Enabled() {
		t.Error("Off should not be enabled")
	}
	if !Warn.Enabled() || !Error.Enabled() {
		t.Error("Warn and Error should be enabled")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Severity
	}{
		{"word off", "off", Off},
		{"word warn", "warn", Warn},
		{"word error", "error", Error},
		{"upper case", "ERROR", Error},
		{"padded", " warn ", Warn},
		{"digit string", "2", Error},
		{"int", 1, Warn},
		{"int64", int64(2), Error},
		{"uint8", uint8(0), Off},
		{"float64", float64(2), Error},
		{"json number", json.Number("1"), Warn},
		{"severity", Warn, Warn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if err != nil {
				t.Fatalf("ParseSeverity(%#v) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity(%#v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSeverity_Invalid(t *testing.T) {
	inputs := []any{"fatal", "", 3, -1, 1.5, true, nil, map[string]any{}, Severity(9)}

	for _, input := range inputs {
		if _, err := ParseSeverity(input); err == nil {
			t.Errorf("ParseSeverity(%#v) error = nil, want error", input)
		}
	}
}

func TestSeverity_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Severity{"a": Warn})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":"warn"}` {
		t.Errorf("Marshal = %s, want %s", data, `{"a":"warn"}`)
	}
}
