package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command. Running pluglint with no
// arguments performs a full validation of the plugin tree and the
// marketplace manifest.
var rootCmd = &cobra.Command{
	Use:   "pluglint",
	Short: "Pluglint - plugin tree and marketplace validator",
	Long: `Pluglint validates a directory tree of plugin packages and the
marketplace manifest that lists them.

For every plugin directory it checks the plugin.json manifest, README
presence, and skill/command documentation, then cross-checks each
marketplace entry's declared version against the plugin's own manifest.

Exit status is 0 when no errors were recorded, 1 otherwise.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
