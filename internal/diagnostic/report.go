package diagnostic

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Report is the machine-readable view of a Diagnostics instance,
// suitable for consumption by editors and CI tooling.
type Report struct {
	Valid    bool         `json:"valid"`
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty"`
}

// MarshalJSON encodes the severity as its string name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Report returns the report view of the diagnostics.
func (d *Diagnostics) Report() Report {
	return Report{
		Valid:    d.IsValid(),
		Errors:   d.Errors,
		Warnings: d.Warnings,
		Infos:    d.Infos,
	}
}

// WriteJSON writes the diagnostics as an indented JSON report.
func (d *Diagnostics) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(d.Report()); err != nil {
		return fmt.Errorf("failed to encode diagnostics report: %w", err)
	}

	return nil
}
