package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/lintrc/lint"
	"github.com/jokarl/lintrc/loader"
	"github.com/jokarl/lintrc/plugin"
	"github.com/jokarl/lintrc/presets"
)

// app holds the flags shared by every command.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logLevel       string
	configPath     string
	plugins        []string
	requirePlugins bool
	allowUnknown   bool

	logger hclog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:          "lintrc",
		Short:        "Load, validate and resolve lint configurations",
		Long:         "lintrc reads eslintrc-style configurations in JSON, YAML, TOML or HCL, expands their presets and prints the effective rules for a file.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := hclog.LevelFromString(a.logLevel)
			if level == hclog.NoLevel {
				if a.logLevel != "" {
					return fmt.Errorf("invalid --log-level %q; use trace|debug|info|warn|error", a.logLevel)
				}
				level = hclog.Warn
			}
			a.logger = hclog.New(&hclog.LoggerOptions{
				Name:   "lintrc",
				Level:  level,
				Output: a.stderr,
			})
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", os.Getenv("LINTRC_LOG"), "Log level: trace|debug|info|warn|error (env LINTRC_LOG)")
	flags.StringVarP(&a.configPath, "config", "c", "", "Configuration file (default: nearest .eslintrc.* above the working directory)")
	flags.StringArrayVar(&a.plugins, "plugin", nil, "Preset plugin binary to load (repeatable)")
	flags.BoolVar(&a.requirePlugins, "require-plugins", false, "Reject namespaced rules whose plugin is not declared")
	flags.BoolVar(&a.allowUnknown, "allow-unknown-keys", false, "Warn about unknown configuration keys instead of failing")

	rootCmd.AddCommand(
		newPrintConfigCmd(a),
		newValidateCmd(a),
		newPresetsCmd(a),
	)

	return rootCmd
}

// registry builds the preset chain: plugins first, then built-in presets,
// then preset files relative to baseDir. The returned func stops plugins.
func (a *app) registry(baseDir string) (*lint.Registry, func(), error) {
	registry := lint.NewRegistry()
	var clients []*plugin.Client
	closeAll := func() {
		for _, c := range clients {
			c.Close()
		}
	}

	for _, path := range a.plugins {
		c, err := plugin.Open(path, a.logger)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		clients = append(clients, c)
		registry.Register(c)
	}
	for _, p := range presets.Providers() {
		registry.Register(p)
	}
	registry.AddSource(loader.NewFileSource(baseDir, a.loader()))
	return registry, closeAll, nil
}

func (a *app) loader() *loader.Loader {
	return &loader.Loader{Logger: a.logger.Named("loader"), AllowUnknownKeys: a.allowUnknown}
}

func (a *app) resolver(source lint.PresetSource) *lint.Resolver {
	return &lint.Resolver{
		Source:         source,
		RequirePlugins: a.requirePlugins,
		Logger:         a.logger.Named("resolver"),
	}
}

// findConfig returns --config or the nearest configuration file in the
// working directory or one of its parents.
func (a *app) findConfig() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path, err := loader.FindConfig(dir)
		if err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no configuration file found (tried %v): %w", loader.ConfigFileNames, fs.ErrNotExist)
		}
		dir = parent
	}
}

// load reads and resolves the configuration.
func (a *app) load(path string) (*lint.Config, *lint.Resolved, error) {
	cfg, err := a.loader().LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return a.resolve(cfg)
}

func (a *app) resolve(cfg *lint.Config) (*lint.Config, *lint.Resolved, error) {
	registry, closePlugins, err := a.registry(cfg.BaseDir)
	if err != nil {
		return nil, nil, err
	}
	defer closePlugins()

	resolved, err := a.resolver(registry).Resolve(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, resolved, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
