package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [CONFIG...]",
		Short: "Check that configuration files load and resolve",
		Long:  "validate loads each configuration, expands its presets and checks its overrides. Without arguments the --config file or the nearest configuration is checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				path, err := a.findConfig()
				if err != nil {
					return err
				}
				paths = []string{path}
			}

			var failed int
			for _, path := range paths {
				cfg, resolved, err := a.load(path)
				if err != nil {
					fmt.Fprintf(a.stdout, "%s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Fprintf(a.stdout, "%s: ok (%d rules, %d overrides)\n", resolved.Source(), len(resolved.Rules()), len(cfg.Overrides))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d configurations are invalid", failed, len(paths))
			}
			return nil
		},
	}
}
