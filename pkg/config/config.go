package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// StaticConfig is the configuration for the server.
// It allows to configure server specific settings and tools to be enabled or disabled.
type StaticConfig struct {
	LogLevel   int    `toml:"log_level,omitzero"`
	Port       string `toml:"port,omitempty"`
	KubeConfig string `toml:"kubeconfig,omitempty"`
	// Namespace used when a namespaced read does not specify one and the
	// kubeconfig carries no default. Empty means all namespaces for lists.
	Namespace  string `toml:"namespace,omitempty"`
	ListOutput string `toml:"list_output,omitempty"`

	Toolsets      []string `toml:"toolsets,omitempty"`
	EnabledTools  []string `toml:"enabled_tools,omitempty"`
	DisabledTools []string `toml:"disabled_tools,omitempty"`
}

// Default returns the default configuration. All toolsets are enabled and
// list results are rendered as YAML.
func Default() *StaticConfig {
	return &StaticConfig{
		ListOutput: "yaml",
		Toolsets:   []string{"core", "traefik", "argocd", "keda", "longhorn"},
	}
}

// Read reads the toml file at path and returns the parsed StaticConfig,
// starting from the defaults.
func Read(configPath string) (*StaticConfig, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	return ReadToml(configData)
}

// ReadToml reads the toml data and returns the StaticConfig.
func ReadToml(configData []byte) (*StaticConfig, error) {
	config := Default()
	if err := toml.Unmarshal(configData, config); err != nil {
		return nil, err
	}
	return config, nil
}
