package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is where the CLI looks for configuration when no --config
// flag is given. A missing file at this path is not an error; the
// defaults apply.
const DefaultFile = "pluglint.yml"

// Config represents the optional pluglint.yml tool configuration.
// It overrides where the validator looks for the plugins tree and the
// marketplace manifest; command-line flags override it in turn.
type Config struct {
	PluginsDir      string `yaml:"plugins_dir"`      // Root whose subdirectories are candidate plugins
	MarketplaceFile string `yaml:"marketplace_file"` // Path to the marketplace manifest
}

// Default returns the conventional repository layout.
func Default() *Config {
	return &Config{
		PluginsDir:      "plugins",
		MarketplaceFile: filepath.FromSlash(".claude-plugin/marketplace.json"),
	}
}

// Validate performs strict validation on the configuration
func (c *Config) Validate() error {
	if c.PluginsDir == "" {
		return fmt.Errorf("plugins_dir must not be empty")
	}

	if c.MarketplaceFile == "" {
		return fmt.Errorf("marketplace_file must not be empty")
	}

	return nil
}

// Load reads and validates a pluglint.yml from the specified path.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
