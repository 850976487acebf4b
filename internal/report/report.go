// Package report collects validation outcomes into an append-only log
// and renders the aggregated result as a human-readable summary or JSON.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// MarketplacePlugin is the sentinel plugin identifier for outcomes that
// belong to the marketplace file rather than any one plugin directory.
const MarketplacePlugin = "marketplace"

// Kind classifies a check outcome. Warnings are surfaced in the summary
// but never affect the overall pass/fail verdict; errors always do.
type Kind int

const (
	KindOK Kind = iota
	KindWarn
	KindError
)

// String returns the lowercase label used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindWarn:
		return "warn"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as its string label.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Outcome is a single validation verdict. Outcomes are immutable once
// recorded; the report never edits or removes them.
type Outcome struct {
	Plugin  string `json:"plugin"`
	Check   string `json:"check"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message,omitempty"`
}

// Report is an append-only, insertion-ordered log of check outcomes.
// It is written by exactly one goroutine per run; checkers receive it
// by reference rather than through package-level state.
type Report struct {
	runID    string
	outcomes []Outcome
}

// New creates an empty report with a fresh run identifier.
func New() *Report {
	return &Report{runID: uuid.New().String()}
}

// RunID returns the unique identifier assigned to this validation run.
func (r *Report) RunID() string {
	return r.runID
}

// Add records one outcome. Entries are kept in the order they arrive.
func (r *Report) Add(plugin, check string, kind Kind, message string) {
	r.outcomes = append(r.outcomes, Outcome{
		Plugin:  plugin,
		Check:   check,
		Kind:    kind,
		Message: message,
	})
}

// Ok records an unqualified pass.
func (r *Report) Ok(plugin, check string) {
	r.Add(plugin, check, KindOK, "")
}

// Warn records a pass that carries a warning annotation.
func (r *Report) Warn(plugin, check, message string) {
	r.Add(plugin, check, KindWarn, message)
}

// Error records a hard failure.
func (r *Report) Error(plugin, check, message string) {
	r.Add(plugin, check, KindError, message)
}

// Outcomes returns a copy of every recorded outcome in insertion order.
func (r *Report) Outcomes() []Outcome {
	out := make([]Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// Errors returns the hard failures in insertion order.
func (r *Report) Errors() []Outcome {
	var errs []Outcome
	for _, o := range r.outcomes {
		if o.Kind == KindError {
			errs = append(errs, o)
		}
	}
	return errs
}

// Warnings returns the warning outcomes in insertion order.
func (r *Report) Warnings() []Outcome {
	var warns []Outcome
	for _, o := range r.outcomes {
		if o.Kind == KindWarn {
			warns = append(warns, o)
		}
	}
	return warns
}

// Passed reports whether the run recorded zero hard failures.
func (r *Report) Passed() bool {
	for _, o := range r.outcomes {
		if o.Kind == KindError {
			return false
		}
	}
	return true
}

// PluginCount returns the number of distinct plugins referenced by the
// recorded outcomes, excluding the marketplace sentinel.
func (r *Report) PluginCount() int {
	seen := make(map[string]bool)
	for _, o := range r.outcomes {
		if o.Plugin != MarketplacePlugin {
			seen[o.Plugin] = true
		}
	}
	return len(seen)
}
