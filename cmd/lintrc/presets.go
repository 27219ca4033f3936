package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the presets available to extends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, closePlugins, err := a.registry(".")
			if err != nil {
				return err
			}
			defer closePlugins()

			for _, p := range registry.Providers() {
				fmt.Fprintf(a.stdout, "%s %s\n", p.ProviderName(), p.ProviderVersion())
				for _, name := range p.PresetNames() {
					fmt.Fprintf(a.stdout, "  %s\n", name)
				}
			}
			return nil
		},
	}
}
