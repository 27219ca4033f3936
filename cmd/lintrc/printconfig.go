package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jokarl/lintrc/lint"
)

// fileReport is the print-config output for one path.
type fileReport struct {
	Path             string            `json:"path"`
	Ignored          bool              `json:"ignored"`
	MatchedOverrides []int             `json:"matchedOverrides"`
	Env              map[string]bool   `json:"env,omitempty"`
	Globals          map[string]string `json:"globals,omitempty"`
	Parser           string            `json:"parser,omitempty"`
	ParserOptions    map[string]any    `json:"parserOptions,omitempty"`
	Plugins          []string          `json:"plugins,omitempty"`
	Rules            lint.RuleSet      `json:"rules"`
	Settings         map[string]any    `json:"settings,omitempty"`
}

func newFileReport(resolved *lint.Resolved, path string) fileReport {
	fc := resolved.ConfigFor(path)
	matched := resolved.MatchingOverrides(path)
	if matched == nil {
		matched = []int{}
	}
	rules := fc.Rules
	if rules == nil {
		rules = lint.RuleSet{}
	}
	return fileReport{
		Path:             fc.Path,
		Ignored:          resolved.IsIgnored(path),
		MatchedOverrides: matched,
		Env:              fc.Env,
		Globals:          fc.Globals,
		Parser:           fc.Parser,
		ParserOptions:    fc.ParserOptions,
		Plugins:          fc.Plugins,
		Rules:            rules,
		Settings:         fc.Settings,
	}
}

func newPrintConfigCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "print-config PATH",
		Short: "Print the effective configuration for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			configPath, err := a.findConfig()
			if err != nil {
				return err
			}

			_, resolved, err := a.load(configPath)
			if err != nil {
				return err
			}
			if err := writeJSON(a.stdout, newFileReport(resolved, target)); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx, stop := signalContext()
			defer stop()
			a.logger.Info("watching configuration", "path", configPath)
			return a.loader().Watch(ctx, configPath, func(cfg *lint.Config) {
				_, resolved, err := a.resolve(cfg)
				if err != nil {
					fmt.Fprintf(a.stderr, "Error: %v\n", err)
					return
				}
				if err := writeJSON(a.stdout, newFileReport(resolved, target)); err != nil {
					a.logger.Error("write configuration", "error", err)
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Print again whenever the configuration file changes")

	return cmd
}
