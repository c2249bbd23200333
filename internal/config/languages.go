package config

import (
	"fmt"
	"sort"
	"strings"

	"binding-generator/internal/common"
)

// GenLanguage represents a target language the generator can emit
// bindings for.
type GenLanguage int

const (
	GenLanguageGo GenLanguage = iota
	GenLanguageJava
	GenLanguageSwift
	GenLanguageJavascript
)

// GenLanguageAll lists every supported target language, in the fixed
// order used for deterministic reporting.
var GenLanguageAll = [...]GenLanguage{
	GenLanguageGo,
	GenLanguageJava,
	GenLanguageSwift,
	GenLanguageJavascript,
}

// String returns the language name as used in config files and flags.
func (l GenLanguage) String() string {
	switch l {
	case GenLanguageGo:
		return "go"
	case GenLanguageJava:
		return "java"
	case GenLanguageSwift:
		return "swift"
	case GenLanguageJavascript:
		return "javascript"
	default:
		return common.UnknownStr
	}
}

// GenLanguageFromString parses a GenLanguage from its string name.
func GenLanguageFromString(s string) (GenLanguage, error) {
	for _, l := range GenLanguageAll {
		if l.String() == s {
			return l, nil
		}
	}

	return GenLanguage(0), fmt.Errorf("unknown generation language %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *GenLanguage) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	lang, err := GenLanguageFromString(s)
	if err != nil {
		return err
	}

	*l = lang

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l GenLanguage) MarshalYAML() (any, error) {
	return l.String(), nil
}

// LanguageSet restricts which target languages are generated.
// An empty set is the universal set: generation is unrestricted.
type LanguageSet map[GenLanguage]struct{}

// NewLanguageSet builds a set from the given languages.
func NewLanguageSet(langs ...GenLanguage) LanguageSet {
	s := make(LanguageSet, len(langs))
	for _, l := range langs {
		s[l] = struct{}{}
	}

	return s
}

// Contains returns true if the language is in the set.
func (s LanguageSet) Contains(l GenLanguage) bool {
	_, ok := s[l]
	return ok
}

// IsEmpty returns true if no restriction is declared.
func (s LanguageSet) IsEmpty() bool {
	return len(s) == 0
}

// UnmarshalYAML decodes a list of language names with set semantics;
// duplicates are ignored.
func (s *LanguageSet) UnmarshalYAML(unmarshal func(any) error) error {
	var list []GenLanguage
	if err := unmarshal(&list); err != nil {
		return err
	}

	result := make(LanguageSet, len(list))
	for _, l := range list {
		result[l] = struct{}{}
	}

	*s = result

	return nil
}

// MarshalYAML emits the language names in fixed language order.
func (s LanguageSet) MarshalYAML() (any, error) {
	var names []string
	for _, l := range GenLanguageAll {
		if s.Contains(l) {
			names = append(names, l.String())
		}
	}

	return names, nil
}

// String returns a comma-separated listing in fixed language order.
func (s LanguageSet) String() string {
	var names []string
	for _, l := range GenLanguageAll {
		if s.Contains(l) {
			names = append(names, l.String())
		}
	}

	return strings.Join(names, ",")
}

// NoGeneratableLanguagesError reports that the declared restriction and
// the requested languages have an empty intersection. It is a run-level
// condition, reported once rather than per language table.
type NoGeneratableLanguagesError struct {
	Declared  LanguageSet
	Requested []GenLanguage
}

// Error implements error.
func (e *NoGeneratableLanguagesError) Error() string {
	var reqNames []string
	for _, l := range e.Requested {
		reqNames = append(reqNames, l.String())
	}

	sort.Strings(reqNames)

	return fmt.Sprintf("no generatable languages: config restricts generation to {%s}, requested {%s}",
		e.Declared, strings.Join(reqNames, ","))
}

// Effective computes the effective target list for a generation run.
// A non-empty set restricts the requested languages to the declared
// ones (preserving request order); an empty set leaves the request
// unchanged. An empty intersection with a non-empty request is an
// error the invoking tool must surface.
func (s LanguageSet) Effective(requested []GenLanguage) ([]GenLanguage, error) {
	if s.IsEmpty() {
		if len(requested) == 0 {
			return nil, nil
		}

		return append([]GenLanguage{}, requested...), nil
	}

	var effective []GenLanguage

	seen := make(map[GenLanguage]bool, len(requested))
	for _, l := range requested {
		if seen[l] {
			continue
		}

		seen[l] = true

		if s.Contains(l) {
			effective = append(effective, l)
		}
	}

	if len(effective) == 0 && len(requested) > 0 {
		return nil, &NoGeneratableLanguagesError{Declared: s, Requested: requested}
	}

	return effective, nil
}
