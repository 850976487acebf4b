package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluglint/pluglint/internal/config"
	"github.com/pluglint/pluglint/internal/engine"
	"github.com/pluglint/pluglint/internal/printer"
)

var (
	pluginsDir      string
	marketplaceFile string
	configFile      string
	jsonOutput      bool
)

func init() {
	rootCmd.Flags().StringVar(&pluginsDir, "plugins-dir", "", `Plugins root directory (default "plugins")`)
	rootCmd.Flags().StringVar(&marketplaceFile, "marketplace", "", `Marketplace manifest path (default ".claude-plugin/marketplace.json")`)
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to pluglint.yml configuration")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report in JSON format")
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	// Progress lines go to stdout; with --json only the report is emitted
	out := io.Writer(os.Stdout)
	if jsonOutput {
		out = io.Discard
	}

	rep, err := engine.Run(opts, out)
	if errors.Is(err, engine.ErrNoPluginsRoot) {
		return printer.Error("plugins directory not found",
			fmt.Sprintf("Expected a plugins root at '%s', but it does not exist.", opts.PluginsDir),
			[]string{
				"Run pluglint from the repository root",
				"Point --plugins-dir (or plugins_dir in pluglint.yml) at the plugins tree",
			})
	}
	if errors.Is(err, engine.ErrNoPluginsFound) {
		return printer.Error("no plugins found",
			fmt.Sprintf("The plugins root '%s' exists but contains no plugin directories.", opts.PluginsDir),
			[]string{"Add at least one plugin directory under the plugins root"})
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		if err := rep.WriteJSON(os.Stdout); err != nil {
			return err
		}
	} else {
		rep.WriteSummary(os.Stdout)
	}

	if !rep.Passed() {
		return fmt.Errorf("validation failed with %d error(s)", len(rep.Errors()))
	}

	return nil
}

// resolveOptions merges defaults, the optional pluglint.yml, and
// explicit flags, in increasing order of precedence.
func resolveOptions() (engine.Options, error) {
	cfg := config.Default()

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return engine.Options{}, err
		}
		cfg = loaded
	default:
		// The default config file is optional; only load it when present
		if _, err := os.Stat(config.DefaultFile); err == nil {
			loaded, err := config.Load(config.DefaultFile)
			if err != nil {
				return engine.Options{}, err
			}
			cfg = loaded
		}
	}

	opts := engine.Options{
		PluginsDir:      cfg.PluginsDir,
		MarketplaceFile: cfg.MarketplaceFile,
	}
	if pluginsDir != "" {
		opts.PluginsDir = pluginsDir
	}
	if marketplaceFile != "" {
		opts.MarketplaceFile = marketplaceFile
	}

	return opts, nil
}
