package checker

import (
	"fmt"

	"github.com/pluglint/pluglint/internal/manifest"
	"github.com/pluglint/pluglint/internal/report"
)

// RequiredMarketplaceFields are the top-level keys the marketplace file
// must declare.
var RequiredMarketplaceFields = []string{"name", "description", "plugins"}

// RequiredEntryFields are the keys every marketplace plugin entry must
// declare.
var RequiredEntryFields = []string{"name", "version", "description", "source"}

// CheckMarketplace validates the marketplace file and cross-checks each
// listed entry's version against the corresponding plugin's own manifest.
// configs maps plugin directory names to manifests that passed the
// plugin.json check; entries without a matching manifest are not
// version-checked. A missing marketplace file is a warning, not an
// error: the registry is optional infrastructure.
func CheckMarketplace(path string, configs map[string]manifest.Document, rep *report.Report) {
	doc := manifest.Load(path)

	switch doc.Status {
	case manifest.StatusNotFound:
		rep.Warn(report.MarketplacePlugin, "marketplace.json", "File not found")
		return
	case manifest.StatusMalformed:
		rep.Error(report.MarketplacePlugin, "marketplace.json", "Invalid JSON syntax")
		return
	}

	if missing := doc.Missing(RequiredMarketplaceFields); len(missing) > 0 {
		rep.Error(report.MarketplacePlugin, "marketplace.json",
			fmt.Sprintf("Missing required fields: %v", missing))
		return
	}

	rep.Ok(report.MarketplacePlugin, "marketplace.json")

	// Validate each listed entry in file order
	for _, item := range doc.List("plugins") {
		entry, ok := item.(map[string]any)
		if !ok {
			rep.Error(report.MarketplacePlugin, "plugin:unknown", "Entry is not a JSON object")
			continue
		}

		entryName, _ := entry["name"].(string)
		if entryName == "" {
			entryName = "unknown"
		}

		var missing []string
		for _, key := range RequiredEntryFields {
			if _, ok := entry[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			rep.Error(report.MarketplacePlugin, "plugin:"+entryName,
				fmt.Sprintf("Missing fields: %v", missing))
			continue
		}

		config, ok := configs[entryName]
		if !ok {
			// No successfully loaded plugin with this directory name;
			// nothing to compare against.
			continue
		}

		entryVersion, _ := entry["version"].(string)
		pluginVersion := config.String("version")
		if pluginVersion != entryVersion {
			rep.Error(report.MarketplacePlugin, "version:"+entryName,
				fmt.Sprintf("Version mismatch: plugin.json=%s, marketplace.json=%s",
					pluginVersion, entryVersion))
		} else {
			rep.Ok(report.MarketplacePlugin, "version:"+entryName)
		}
	}
}
