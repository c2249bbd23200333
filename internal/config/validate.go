package config

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"binding-generator/internal/diagnostic"
	"binding-generator/internal/idl"
)

// Options controls caller policy during validation.
type Options struct {
	// FailFast stops after the first language table with errors
	// instead of collecting the full report.
	FailFast bool

	// StrictKinds escalates kind/shape mismatches from warnings to
	// errors.
	StrictKinds bool
}

// overrideLanguages are the targets that carry override tables. The
// Javascript table is empty by construction, so there is nothing to
// validate for it.
var overrideLanguages = []GenLanguage{GenLanguageGo, GenLanguageJava, GenLanguageSwift}

// langResult carries one language table's validation output back to
// the merge step.
type langResult struct {
	resolved []ResolvedOverride
	diags    diagnostic.Diagnostics
}

// Validate checks a config against the wire types visible in its
// owning package and resolves every override. It returns the Validated
// view when the config is accepted, and always returns the collected
// diagnostics. A config with error diagnostics is rejected: the
// Validated result is nil.
//
// Language tables are independent, so invalid entries in one table do
// not block the others unless Options.FailFast is set, and the tables
// are validated concurrently otherwise. The resolver is only read, so
// it must tolerate concurrent lookups.
func Validate(cfg *Config, resolver idl.Resolver, opts Options) (*Validated, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return nil, res
	}

	if resolver == nil {
		res.AddError("resolver_is_nil", "wire type resolver is nil", "", "")
		return nil, res
	}

	overrides := make(map[GenLanguage][]ResolvedOverride, len(overrideLanguages))

	if opts.FailFast {
		for _, lang := range overrideLanguages {
			result := validateTarget(cfg, lang, resolver, opts)
			res.Merge(result.diags)

			if res.HasErrors() {
				return nil, res
			}

			if len(result.resolved) > 0 {
				overrides[lang] = result.resolved
			}
		}

		return &Validated{cfg: cfg, overrides: overrides}, res
	}

	// Tables share only read-only inputs; run them concurrently and
	// merge in fixed language order so reports stay deterministic.
	results := make([]langResult, len(overrideLanguages))

	var g errgroup.Group

	for i, lang := range overrideLanguages {
		g.Go(func() error {
			results[i] = validateTarget(cfg, lang, resolver, opts)
			return nil
		})
	}

	_ = g.Wait() // table validation reports through diagnostics, never errors

	for i, lang := range overrideLanguages {
		res.Merge(results[i].diags)

		if len(results[i].resolved) > 0 {
			overrides[lang] = results[i].resolved
		}
	}

	if res.HasErrors() {
		return nil, res
	}

	return &Validated{cfg: cfg, overrides: overrides}, res
}

// validateTarget validates one language's table and resolves its
// entries, ordered by wire type name.
func validateTarget(cfg *Config, lang GenLanguage, resolver idl.Resolver, opts Options) langResult {
	var result langResult

	table := cfg.OverridesFor(lang)
	keys := sortedKeys(table)

	for _, key := range keys {
		nt := table[key]

		before := len(result.diags.Errors)
		validateOverride(&result.diags, lang, key, &nt, resolver, opts)

		if len(result.diags.Errors) > before {
			continue
		}

		result.resolved = append(result.resolved, resolveOverride(key, nt))
	}

	switch lang {
	case GenLanguageGo:
		validateStructTags(&result.diags, cfg.Go.StructTags, resolver)
	case GenLanguageJava:
		validateRenames(&result.diags, cfg.Java.WireTypeRenames, resolver)
	}

	return result
}

// sortedKeys orders override keys by wire type name, with the optional
// form after the plain one.
func sortedKeys(table OverrideTable) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		wi, oi := splitWireKey(keys[i])

		wj, oj := splitWireKey(keys[j])
		if wi != wj {
			return wi < wj
		}

		return !oi && oj
	})

	return keys
}
