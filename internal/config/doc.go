// Package config provides the YAML schema, parsing, validation, and
// resolution for binding-generator config files.
//
// A config file sits next to the IDL sources of a package and does two
// things: restrict which target languages are generated, and declare
// per-language overrides that substitute a hand-written native type
// for a generated wire type. The override mechanism is the interesting
// part; the rest is flat restriction data.
//
// # Schema Overview
//
// The config file has the following structure:
//
//	version: "1"
//	# Restrict generation; empty or absent means all languages.
//	languages: [go, java]
//	go:
//	  overrides:
//	    # Full descriptor form.
//	    Duration:
//	      kind: struct
//	      type: time.Duration
//	      zero: {mode: unique}
//	      imports:
//	        - {path: time, name: time}
//	    # "*"-prefixed keys override the optional form of a wire type.
//	    "*Deadline":
//	      kind: pointer
//	      type: "*time.Time"
//	      zero: {mode: canonical, isZero: .IsZero()}
//	      imports:
//	        - {path: time}
//	  structTags:
//	    Duration:
//	      - {field: Seconds, tag: 'json:"seconds"'}
//	java:
//	  overrides:
//	    # Simple string form: just the native type name.
//	    Duration: org.joda.time.Duration
//	  wireTypeRenames:
//	    Duration: WireDuration
//	swift:
//	  overrides:
//	    Duration: TimeInterval
//
// The javascript target carries no override capability, so it has no
// section beyond the languages restriction.
//
// # Zero Policies
//
// Each override declares how the native type's default value relates
// to the wire type's zero value:
//
//   - unique (default): the native default is the only representation
//     of the wire zero; construction and testing both skip conversion.
//   - canonical: the native default is a wire zero, but other native
//     values may be too; testing must evaluate isZero.
//   - unknown: no fast path; all zero handling converts, and isZero is
//     mandatory for testing.
//
// isZero is a member expression when it starts with "." and a free
// function name otherwise; validation resolves the distinction once so
// emitters never re-parse it.
//
// # Validation and Resolution
//
// Validate checks every language table against the wire types defined
// in the owning package, derives unset conversion function names
// (<WireType>ToNative / <WireType>FromNative), deduplicates imports,
// and returns an immutable Validated view for the emitters together
// with a structured diagnostics report. Tables are independent per
// language and validate concurrently.
package config
