package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluglint/pluglint/internal/config"
	"github.com/pluglint/pluglint/internal/testutil"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (testing.T.Chdir requires Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// resetFlags restores the package-level flag state after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		pluginsDir = ""
		marketplaceFile = ""
		configFile = ""
		jsonOutput = false
	})
}

func TestResolveOptions_Defaults(t *testing.T) {
	resetFlags(t)
	chdir(t, t.TempDir()) // no pluglint.yml present

	opts, err := resolveOptions()
	require.NoError(t, err)
	assert.Equal(t, "plugins", opts.PluginsDir)
	assert.Equal(t, config.Default().MarketplaceFile, opts.MarketplaceFile)
}

func TestResolveOptions_ExplicitConfigFile(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()
	configFile = filepath.Join(tmpDir, "pluglint.yml")
	testutil.WriteFile(t, configFile, "plugins_dir: \"packages\"\n")

	opts, err := resolveOptions()
	require.NoError(t, err)
	assert.Equal(t, "packages", opts.PluginsDir)
}

func TestResolveOptions_ExplicitConfigFileMissing(t *testing.T) {
	resetFlags(t)
	configFile = filepath.Join(t.TempDir(), "pluglint.yml")

	_, err := resolveOptions()
	assert.Error(t, err)
}

func TestResolveOptions_DefaultConfigFilePickedUp(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(tmpDir, config.DefaultFile), "plugins_dir: \"packages\"\n")
	chdir(t, tmpDir)

	opts, err := resolveOptions()
	require.NoError(t, err)
	assert.Equal(t, "packages", opts.PluginsDir)
}

func TestResolveOptions_FlagsOverrideConfig(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()
	configFile = filepath.Join(tmpDir, "pluglint.yml")
	testutil.WriteFile(t, configFile, "plugins_dir: \"packages\"\nmarketplace_file: \"m.json\"\n")
	pluginsDir = "override"

	opts, err := resolveOptions()
	require.NoError(t, err)
	assert.Equal(t, "override", opts.PluginsDir)
	assert.Equal(t, "m.json", opts.MarketplaceFile)
}

func TestRunValidate_PassingTree(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "plugins")
	dir := testutil.WritePlugin(t, root, "demo", "1.0")
	testutil.WriteSkill(t, dir, "demo-skill")
	testutil.WriteCommand(t, dir, "demo-command")
	testutil.WriteMarketplace(t, filepath.Join(tmpDir, ".claude-plugin", "marketplace.json"),
		[2]string{"demo", "1.0"})
	chdir(t, tmpDir)

	assert.NoError(t, runValidate(rootCmd, nil))
}

func TestRunValidate_FailingTree(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "plugins")
	testutil.WritePlugin(t, root, "demo", "1.0")
	testutil.WriteMarketplace(t, filepath.Join(tmpDir, ".claude-plugin", "marketplace.json"),
		[2]string{"demo", "2.0"})
	chdir(t, tmpDir)

	err := runValidate(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed with 1 error(s)")
}

func TestRunValidate_NoPluginsRoot(t *testing.T) {
	resetFlags(t)
	chdir(t, t.TempDir())

	err := runValidate(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugins directory not found")
}

func TestRunValidate_EmptyPluginsRoot(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "plugins"), 0755))
	chdir(t, tmpDir)

	err := runValidate(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no plugins found")
}
