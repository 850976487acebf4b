// Package engine drives a full validation run: plugin discovery, the
// per-plugin check loop, the marketplace cross-check, and the report.
package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pluglint/pluglint/internal/checker"
	"github.com/pluglint/pluglint/internal/manifest"
	"github.com/pluglint/pluglint/internal/printer"
	"github.com/pluglint/pluglint/internal/report"
)

// Terminal failure states. Both short-circuit to a failing exit status
// before any report exists.
var (
	ErrNoPluginsRoot  = errors.New("plugins directory not found")
	ErrNoPluginsFound = errors.New("no plugins found")
)

// Options configures a validation run.
type Options struct {
	PluginsDir      string
	MarketplaceFile string
}

// DefaultOptions returns the conventional repository layout.
func DefaultOptions() Options {
	return Options{
		PluginsDir:      "plugins",
		MarketplaceFile: filepath.FromSlash(".claude-plugin/marketplace.json"),
	}
}

// Discover returns the immediate subdirectories of the plugins root in
// lexicographic order. Non-directory entries are ignored. Returns
// ErrNoPluginsRoot when the root is missing and ErrNoPluginsFound when
// it holds no subdirectories.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoPluginsRoot, dir)
		}
		return nil, fmt.Errorf("failed to read plugins directory: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}

	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPluginsFound, dir)
	}

	// os.ReadDir already sorts by filename; keep the ordering contract
	// explicit so report order stays reproducible.
	sort.Strings(dirs)

	return dirs, nil
}

// Run executes the full validation sequence against the configured
// paths and returns the populated report. Progress lines are written to
// out as each plugin and the marketplace are validated. The per-plugin
// loop never aborts early; the marketplace check always runs exactly
// once after it. On a terminal failure state no report is produced.
func Run(opts Options, out io.Writer) (*report.Report, error) {
	dirs, err := Discover(opts.PluginsDir)
	if err != nil {
		return nil, err
	}

	rep := report.New()
	configs := make(map[string]manifest.Document)

	for _, dir := range dirs {
		printer.Step(out, "Validating %s...\n", filepath.Base(dir))
		if doc, ok := checker.CheckPlugin(dir, rep); ok {
			configs[filepath.Base(dir)] = doc
		}
	}

	printer.Step(out, "Validating marketplace.json...\n")
	checker.CheckMarketplace(opts.MarketplaceFile, configs, rep)

	return rep, nil
}
