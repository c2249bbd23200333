// Package diagnostic provides structured warnings, errors, and
// context for config validation in the binding generator.
//
// Key capabilities:
//   - Per-language validation error collection
//   - Unknown wire type and zero-policy violation reports
//   - Import sanity warnings with suggestions
//   - Machine-readable JSON report output
package diagnostic
