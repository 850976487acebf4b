// Package checker implements the per-plugin and marketplace validation
// rules. Every check writes its outcome into a shared report; no check
// aborts the run or suppresses another check.
package checker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluglint/pluglint/internal/manifest"
	"github.com/pluglint/pluglint/internal/report"
)

// ManifestSubpath is the conventional manifest location inside a plugin
// directory.
const ManifestSubpath = ".claude-plugin/plugin.json"

const (
	readmeFile  = "README.md"
	skillsDir   = "skills"
	commandsDir = "commands"
)

// RequiredPluginFields are the top-level keys every plugin.json must
// declare.
var RequiredPluginFields = []string{"name", "version", "description"}

// CheckPlugin runs all checks for one plugin directory. The four checks
// are independent: a failed manifest still leaves README, skill, and
// command diagnostics intact. The plugin identity is the directory name.
// The returned document is only valid for cross-checking when ok is true.
func CheckPlugin(dir string, rep *report.Report) (doc manifest.Document, ok bool) {
	name := filepath.Base(dir)

	doc, ok = checkManifest(dir, name, rep)
	checkReadme(dir, name, rep)
	checkSkills(dir, name, rep)
	checkCommands(dir, name, rep)

	return doc, ok
}

// checkManifest validates that plugin.json exists, parses, and declares
// the required fields.
func checkManifest(dir, name string, rep *report.Report) (manifest.Document, bool) {
	doc := manifest.Load(filepath.Join(dir, filepath.FromSlash(ManifestSubpath)))

	switch doc.Status {
	case manifest.StatusNotFound:
		rep.Error(name, "plugin.json", "File not found")
		return doc, false
	case manifest.StatusMalformed:
		rep.Error(name, "plugin.json", "Invalid JSON syntax")
		return doc, false
	}

	if missing := doc.Missing(RequiredPluginFields); len(missing) > 0 {
		rep.Error(name, "plugin.json", fmt.Sprintf("Missing required fields: %v", missing))
		return doc, false
	}

	rep.Ok(name, "plugin.json")
	return doc, true
}

// checkReadme validates that README.md exists. Presence only, no
// content inspection.
func checkReadme(dir, name string, rep *report.Report) {
	if _, err := os.Stat(filepath.Join(dir, readmeFile)); err != nil {
		rep.Error(name, "README.md", "File not found")
		return
	}
	rep.Ok(name, "README.md")
}

// checkSkills validates that at least one skills/*/SKILL.md exists.
// Skills are optional, so both a missing directory and an empty one
// degrade to warnings rather than errors.
func checkSkills(dir, name string, rep *report.Report) {
	skills := filepath.Join(dir, skillsDir)
	if info, err := os.Stat(skills); err != nil || !info.IsDir() {
		rep.Warn(name, "SKILL.md", "No skills directory")
		return
	}

	// Exactly one level below skills/, matching the layout convention
	matches, _ := filepath.Glob(filepath.Join(skills, "*", "SKILL.md"))
	if len(matches) == 0 {
		rep.Warn(name, "SKILL.md", "No SKILL.md found")
		return
	}

	rep.Ok(name, "SKILL.md")
}

// checkCommands validates that the commands directory holds at least one
// .md file. Commands are optional, same degradation as skills.
func checkCommands(dir, name string, rep *report.Report) {
	commands := filepath.Join(dir, commandsDir)
	if info, err := os.Stat(commands); err != nil || !info.IsDir() {
		rep.Warn(name, "commands", "No commands directory")
		return
	}

	// Flat glob, not recursive
	matches, _ := filepath.Glob(filepath.Join(commands, "*.md"))
	if len(matches) == 0 {
		rep.Warn(name, "commands", "No command files found")
		return
	}

	rep.Ok(name, "commands")
}
