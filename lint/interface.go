package lint

// PresetSource looks up presets by identifier.
//
// Implementations return *UnknownPresetError when they do not know the
// identifier, so that a Registry can try the next source.
type PresetSource interface {
	Preset(id string) (*Preset, error)
}

// PresetProvider is implemented by bundles of presets, typically one per
// plugin. Providers embed BuiltinProvider and override methods as needed.
//
// Example:
//
//	type ImportProvider struct {
//	    lint.BuiltinProvider
//	}
//
//	p := &ImportProvider{
//	    BuiltinProvider: lint.BuiltinProvider{
//	        Name:    "import",
//	        Version: "2.29.0",
//	        Presets: []*lint.Preset{errorsPreset, warningsPreset},
//	    },
//	}
type PresetProvider interface {
	PresetSource

	// ProviderName returns the name of the provider (e.g. "import").
	ProviderName() string

	// ProviderVersion returns the version of the provider.
	ProviderVersion() string

	// PresetNames returns the identifiers of all presets in the provider.
	PresetNames() []string
}
