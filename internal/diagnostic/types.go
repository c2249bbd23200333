package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"binding-generator/internal/common"
)

// Codes for diagnostics produced during config validation.
const (
	CodeUnknownWireType        = "unknown_wire_type"
	CodeInvalidZeroPolicy      = "invalid_zero_policy"
	CodeKindMismatch           = "kind_mismatch"
	CodeNoGeneratableLanguages = "no_generatable_languages"
	CodeDuplicateOverrideKey   = "duplicate_override_key"
	CodeInvalidNativeType      = "invalid_native_type"
	CodeInvalidImport          = "invalid_import"
	CodeUnusedImport           = "unused_import"
	CodeConflictingImport      = "conflicting_import"
	CodeFunctionIsZeroDeferred = "function_is_zero_deferred"
	CodeUnknownStructTagType   = "unknown_struct_tag_type"
	CodeConflictingRename      = "conflicting_rename"
	CodeUnknownRenameSource    = "unknown_rename_source"
)

// Diagnostics holds all diagnostic information from config validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Language identifies which target language table this relates to (if any).
	Language string `json:"language,omitempty"`
	// WireType identifies which wire type entry this relates to (if any).
	WireType string `json:"wireType,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, language, wireType string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Language: language,
		WireType: wireType,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, language, wireType string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Language: language,
		WireType: wireType,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, language, wireType string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Language: language,
		WireType: wireType,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Language != "" {
		prefix = append(prefix, "["+d.Language+"]")
	}

	if d.WireType != "" {
		prefix = append(prefix, d.WireType)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
