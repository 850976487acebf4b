package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteSummary renders the human-readable summary block: plugin count,
// enumerated errors, enumerated warnings, and the final verdict line.
// Rendering is a pure read; repeated calls on the same report produce
// byte-identical output.
func (r *Report) WriteSummary(w io.Writer) {
	banner := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintln(w, "VALIDATION SUMMARY")
	fmt.Fprintln(w, banner)

	fmt.Fprintf(w, "Plugins validated: %d\n", r.PluginCount())

	if errs := r.Errors(); len(errs) > 0 {
		fmt.Fprintf(w, "\nErrors (%d):\n", len(errs))
		for _, o := range errs {
			fmt.Fprintf(w, "  [%s] %s: %s\n", o.Plugin, o.Check, o.Message)
		}
	}

	if warns := r.Warnings(); len(warns) > 0 {
		fmt.Fprintf(w, "\nWarnings (%d):\n", len(warns))
		for _, o := range warns {
			fmt.Fprintf(w, "  [%s] %s: %s\n", o.Plugin, o.Check, o.Message)
		}
	}

	if r.Passed() {
		fmt.Fprintln(w, "\nAll validations passed!")
	} else {
		fmt.Fprintf(w, "\nValidation FAILED with %d error(s)\n", len(r.Errors()))
	}
}

// jsonReport is the machine-readable report shape.
type jsonReport struct {
	RunID        string    `json:"run_id"`
	Plugins      int       `json:"plugins_validated"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	Passed       bool      `json:"passed"`
	Outcomes     []Outcome `json:"outcomes"`
}

// WriteJSON writes the complete report as pretty-printed JSON, one
// object per run, suitable for processing with tools like jq.
func (r *Report) WriteJSON(w io.Writer) error {
	payload := jsonReport{
		RunID:        r.runID,
		Plugins:      r.PluginCount(),
		ErrorCount:   len(r.Errors()),
		WarningCount: len(r.Warnings()),
		Passed:       r.Passed(),
		Outcomes:     r.Outcomes(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	// Trailing newline for clean output
	fmt.Fprintln(w)

	return nil
}
