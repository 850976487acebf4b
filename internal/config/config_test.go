package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pluglint.yml")

	validConfig := `plugins_dir: "packages"
marketplace_file: "registry/marketplace.json"
`
	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "packages", config.PluginsDir)
	assert.Equal(t, "registry/marketplace.json", config.MarketplaceFile)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pluglint.yml")

	err := os.WriteFile(configPath, []byte("plugins_dir: \"packages\"\n"), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "packages", config.PluginsDir)
	assert.Equal(t, Default().MarketplaceFile, config.MarketplaceFile)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/pluglint.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pluglint.yml")

	invalidYAML := `plugins_dir:
  - this is
   not valid yaml
`
	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_EmptyPluginsDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pluglint.yml")

	err := os.WriteFile(configPath, []byte("plugins_dir: \"\"\n"), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidate_EmptyMarketplaceFile(t *testing.T) {
	config := &Config{PluginsDir: "plugins"}

	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "marketplace_file must not be empty")
}

func TestDefault(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())
	assert.Equal(t, "plugins", config.PluginsDir)
	assert.Equal(t, filepath.FromSlash(".claude-plugin/marketplace.json"), config.MarketplaceFile)
}
