// Package testutil builds throwaway plugin trees and marketplace files
// for validator tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes contents to path, creating parent directories as
// needed.
func WriteFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

// WritePlugin creates a minimal valid plugin directory (manifest plus
// README, no skills or commands) under root and returns its path.
func WritePlugin(t *testing.T, root, name, version string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	manifest := fmt.Sprintf(`{"name": %q, "version": %q, "description": "Test plugin"}`, name, version)
	WriteFile(t, filepath.Join(dir, ".claude-plugin", "plugin.json"), manifest)
	WriteFile(t, filepath.Join(dir, "README.md"), "# "+name+"\n")
	return dir
}

// WriteSkill adds a skills/<skill>/SKILL.md file to a plugin directory.
func WriteSkill(t *testing.T, pluginDir, skillName string) {
	t.Helper()
	WriteFile(t, filepath.Join(pluginDir, "skills", skillName, "SKILL.md"), "# "+skillName+"\n")
}

// WriteCommand adds a commands/<name>.md file to a plugin directory.
func WriteCommand(t *testing.T, pluginDir, commandName string) {
	t.Helper()
	WriteFile(t, filepath.Join(pluginDir, "commands", commandName+".md"), "# "+commandName+"\n")
}

// WriteMarketplace creates a marketplace file listing the given
// name→version pairs in the order provided, with a source field for
// every entry, and returns its path.
func WriteMarketplace(t *testing.T, path string, entries ...[2]string) string {
	t.Helper()
	list := ""
	for i, e := range entries {
		if i > 0 {
			list += ", "
		}
		list += fmt.Sprintf(`{"name": %q, "version": %q, "description": "Test plugin", "source": "./plugins/%s"}`,
			e[0], e[1], e[0])
	}
	contents := fmt.Sprintf(`{"name": "test-marketplace", "description": "Test marketplace", "plugins": [%s]}`, list)
	WriteFile(t, path, contents)
	return path
}
