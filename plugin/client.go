package plugin

import (
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/lintrc/lint"
)

// Client is a running preset plugin.
type Client struct {
	lint.PresetProvider
	client *plugin.Client
}

// Open launches the plugin binary at path and returns its preset provider.
// Call Close when the provider is no longer needed.
//
// Example:
//
//	provider, err := plugin.Open("./lintrc-plugin-company", logger)
//	if err != nil {
//	    return err
//	}
//	defer provider.Close()
//	registry.Register(provider)
func Open(path string, logger hclog.Logger) (*Client, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	// #nosec G204 -- plugin paths are provided by the operator
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  Handshake,
		Plugins:          PluginMap,
		Cmd:              exec.Command(path),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Logger:           logger.Named("plugin"),
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("start plugin %s: %w", path, err)
	}
	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("dispense plugin %s: %w", path, err)
	}
	provider, ok := raw.(lint.PresetProvider)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("plugin %s does not provide presets", path)
	}

	logger.Debug("plugin started", "path", path, "provider", provider.ProviderName(), "version", provider.ProviderVersion())
	return &Client{PresetProvider: provider, client: client}, nil
}

// Close stops the plugin process.
func (c *Client) Close() {
	c.client.Kill()
}
