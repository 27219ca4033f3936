// Package plugin provides the entry point for lintrc preset plugins.
//
// Plugins use this package to register their PresetProvider with lintrc.
// The Serve function is called from main() and handles all communication
// with the host process using gRPC via HashiCorp's go-plugin library.
//
// Example plugin main.go:
//
//	package main
//
//	import (
//	    "github.com/jokarl/lintrc/lint"
//	    "github.com/jokarl/lintrc/plugin"
//	)
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        Provider: &lint.BuiltinProvider{
//	            Name:    "company",
//	            Version: "0.1.0",
//	            Presets: presets.All,
//	        },
//	    })
//	}
package plugin

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/lintrc/lint"
)

// ServeOpts contains options for serving the plugin.
type ServeOpts struct {
	// Provider is the plugin's preset provider implementation.
	Provider lint.PresetProvider
	// Logger overrides the default stderr logger.
	Logger hclog.Logger
}

// Serve starts the plugin server.
//
// The function blocks until the host disconnects. When invoked directly
// (outside of lintrc), the plugin prints what it provides and returns.
//
// Example:
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        Provider: &MyProvider{...},
//	    })
//	}
func Serve(opts *ServeOpts) {
	if opts == nil || opts.Provider == nil {
		return
	}

	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		printDirectInvocationMessage(os.Stderr, opts.Provider)
		return
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Level:  hclog.Warn,
			Output: os.Stderr,
		})
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &PresetProviderPlugin{Impl: opts.Provider},
		},
		GRPCServer: plugin.DefaultGRPCServer,
		Logger:     logger,
	})
}

// printDirectInvocationMessage explains what the binary is when it is run
// by hand instead of by lintrc.
func printDirectInvocationMessage(w io.Writer, p lint.PresetProvider) {
	fmt.Fprintf(w, "This is a lintrc preset plugin.\n\n")
	fmt.Fprintf(w, "Provider: %s\n", p.ProviderName())
	fmt.Fprintf(w, "Version: %s\n", p.ProviderVersion())
	fmt.Fprintf(w, "Presets:\n")
	for _, name := range p.PresetNames() {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintf(w, "\nTo use this plugin, pass it to lintrc:\n")
	fmt.Fprintf(w, "  lintrc print-config --plugin %s PATH\n", os.Args[0])
}
