package lint

import (
	"errors"
	"fmt"
	"sync"
)

// BuiltinProvider provides default implementations for the PresetProvider
// interface. Plugin authors embed this struct and override methods as
// needed.
type BuiltinProvider struct {
	// Name is the provider name (e.g. "import").
	Name string
	// Version is the provider version (e.g. "2.29.0").
	Version string
	// Presets is the list of presets in this provider.
	Presets []*Preset
}

// ProviderName returns the name of the provider.
func (p *BuiltinProvider) ProviderName() string {
	return p.Name
}

// ProviderVersion returns the version of the provider.
func (p *BuiltinProvider) ProviderVersion() string {
	return p.Version
}

// PresetNames returns the identifiers of all presets in declaration order.
func (p *BuiltinProvider) PresetNames() []string {
	names := make([]string, len(p.Presets))
	for i, preset := range p.Presets {
		names[i] = preset.ID
	}
	return names
}

// Preset returns the preset with the given identifier.
func (p *BuiltinProvider) Preset(id string) (*Preset, error) {
	for _, preset := range p.Presets {
		if preset.ID == id {
			return preset, nil
		}
	}
	return nil, &UnknownPresetError{ID: id}
}

// Registry is an ordered chain of preset sources. The first source that
// knows an identifier wins. A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	sources   []PresetSource
	providers []PresetProvider
}

// Ensure Registry implements PresetSource.
var _ PresetSource = (*Registry)(nil)

// NewRegistry returns a registry consulting the given providers in order.
func NewRegistry(providers ...PresetProvider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register appends a provider to the chain.
func (r *Registry) Register(p PresetProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, p)
	r.providers = append(r.providers, p)
}

// AddSource appends a source that cannot enumerate its presets, such as
// one that loads preset files on demand.
func (r *Registry) AddSource(s PresetSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, s)
}

// Preset looks the identifier up in every source in order.
func (r *Registry) Preset(id string) (*Preset, error) {
	r.mu.RLock()
	sources := append([]PresetSource(nil), r.sources...)
	r.mu.RUnlock()

	for _, s := range sources {
		preset, err := s.Preset(id)
		if err == nil {
			if preset == nil {
				return nil, fmt.Errorf("preset source returned nil for %q", id)
			}
			return preset, nil
		}
		var unknown *UnknownPresetError
		if errors.As(err, &unknown) && unknown.ID == id {
			continue
		}
		return nil, fmt.Errorf("load preset %q: %w", id, err)
	}
	return nil, &UnknownPresetError{ID: id}
}

// Providers returns the registered providers in order.
func (r *Registry) Providers() []PresetProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]PresetProvider(nil), r.providers...)
}

// PresetNames returns the identifiers of every enumerable preset, in
// provider order.
func (r *Registry) PresetNames() []string {
	var names []string
	for _, p := range r.Providers() {
		names = appendUnique(names, p.PresetNames()...)
	}
	return names
}
