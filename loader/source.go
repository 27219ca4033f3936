package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jokarl/lintrc/lint"
)

// FileSource serves presets stored in configuration files. It answers
// extends entries that are file paths ("./base.json", "../shared/.eslintrc",
// "/etc/lintrc/base.yaml") and reports every other identifier as unknown,
// so it can be chained behind named providers in a lint.Registry.
//
// Relative paths are resolved against BaseDir. Relative extends inside a
// loaded file are resolved against that file's directory. Overrides and
// ignore patterns in an extended file are ignored.
type FileSource struct {
	// BaseDir anchors relative identifiers. Defaults to the working
	// directory.
	BaseDir string
	// Loader parses the files. Defaults to New().
	Loader *Loader

	mu    sync.Mutex
	cache map[string]*lint.Preset
}

// Ensure FileSource implements lint.PresetSource.
var _ lint.PresetSource = (*FileSource)(nil)

// NewFileSource returns a FileSource resolving relative paths against
// baseDir.
func NewFileSource(baseDir string, loader *Loader) *FileSource {
	return &FileSource{BaseDir: baseDir, Loader: loader}
}

// IsFileID reports whether id names a preset file rather than a named
// preset.
func IsFileID(id string) bool {
	return strings.HasPrefix(id, "./") || strings.HasPrefix(id, "../") || filepath.IsAbs(id)
}

// Preset loads the preset file named by id.
func (s *FileSource) Preset(id string) (*lint.Preset, error) {
	if !IsFileID(id) {
		return nil, &lint.UnknownPresetError{ID: id}
	}
	path := id
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.cache[path]; ok {
		return p, nil
	}

	l := s.Loader
	if l == nil {
		l = New()
	}
	cfg, err := l.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &lint.UnknownPresetError{ID: id}
		}
		return nil, err
	}
	if len(cfg.Overrides) > 0 || len(cfg.IgnorePatterns) > 0 {
		l.logger().Warn("ignoring overrides and ignore patterns in extended file", "path", path)
	}

	preset := presetFromConfig(id, cfg)
	if s.cache == nil {
		s.cache = make(map[string]*lint.Preset)
	}
	s.cache[path] = preset
	return preset, nil
}

// presetFromConfig converts a loaded file into a preset. Relative extends
// are made absolute so they resolve against the file that names them.
func presetFromConfig(id string, cfg *lint.Config) *lint.Preset {
	extends := make([]string, 0, len(cfg.Extends))
	for _, e := range cfg.Extends {
		if strings.HasPrefix(e, "./") || strings.HasPrefix(e, "../") {
			e = filepath.Join(cfg.BaseDir, e)
		}
		extends = append(extends, e)
	}
	return &lint.Preset{
		ID:            id,
		Extends:       extends,
		Env:           cfg.Env,
		Plugins:       cfg.Plugins,
		Parser:        cfg.Parser,
		ParserOptions: cfg.ParserOptions,
		Settings:      cfg.Settings,
		Rules:         cfg.Rules,
	}
}

// FindConfig looks for a configuration file in dir, trying the usual file
// names in order. It returns fs.ErrNotExist when none exists.
func FindConfig(dir string) (string, error) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fs.ErrNotExist
}

// ConfigFileNames are the file names FindConfig tries, in priority order.
var ConfigFileNames = []string{
	".eslintrc.hcl",
	".eslintrc.toml",
	".eslintrc.yaml",
	".eslintrc.yml",
	".eslintrc.json",
	".eslintrc",
}
