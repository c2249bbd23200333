package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the root of a binding-generator config file. It is scoped
// to the IDL package whose directory contains it, and is held
// read-only for the duration of a generation run once loaded.
type Config struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Languages restricts which target languages are generated.
	// Empty means all languages are generated.
	Languages LanguageSet `yaml:"languages,omitempty"`

	// Go holds the Go target configuration.
	Go GoTarget `yaml:"go,omitempty"`

	// Java holds the Java target configuration.
	Java JavaTarget `yaml:"java,omitempty"`

	// Swift holds the Swift target configuration.
	Swift SwiftTarget `yaml:"swift,omitempty"`

	// Javascript holds the Javascript target configuration.
	Javascript JavascriptTarget `yaml:"javascript,omitempty"`
}

// GoTarget configures Go binding generation.
type GoTarget struct {
	// Overrides maps wire type names to native type descriptors.
	// A "*"-prefixed key overrides the optional form of the wire type.
	Overrides OverrideTable `yaml:"overrides,omitempty"`

	// StructTags attaches Go struct tags to fields of generated wire
	// structs, keyed by wire type name.
	StructTags map[string][]StructTag `yaml:"structTags,omitempty"`
}

// StructTag names a field of a generated struct and the raw tag to
// attach to it.
type StructTag struct {
	Field string `yaml:"field"`
	Tag   string `yaml:"tag"`
}

// JavaTarget configures Java binding generation.
type JavaTarget struct {
	// Overrides maps wire type names to native type descriptors.
	// Java overrides typically use the simple string form, since only
	// the class name is needed.
	Overrides OverrideTable `yaml:"overrides,omitempty"`

	// WireTypeRenames renames generated wire types, e.g. to avoid
	// clashes with the native classes that replace them.
	WireTypeRenames map[string]string `yaml:"wireTypeRenames,omitempty"`
}

// SwiftTarget configures Swift binding generation.
type SwiftTarget struct {
	// Overrides maps wire type names to native type descriptors.
	Overrides OverrideTable `yaml:"overrides,omitempty"`
}

// JavascriptTarget configures Javascript binding generation. The
// Javascript emitter has no override capability, so its table is empty
// by construction.
type JavascriptTarget struct{}

// OverridesFor returns the override table declared for the given
// language, or nil for languages without override capability.
func (c *Config) OverridesFor(lang GenLanguage) OverrideTable {
	switch lang {
	case GenLanguageGo:
		return c.Go.Overrides
	case GenLanguageJava:
		return c.Java.Overrides
	case GenLanguageSwift:
		return c.Swift.Overrides
	default:
		return nil
	}
}

// OverrideTable maps a wire type name to the native type that replaces
// it in generated code. Map-key uniqueness makes at most one entry per
// wire type per language; the same wire type may carry independent
// overrides in different languages' tables.
type OverrideTable map[string]NativeType

// DuplicateKeyError reports a wire type name appearing twice in one
// override table. YAML mappings make this unreachable after decoding,
// so it only surfaces at the parse boundary.
type DuplicateKeyError struct {
	Key  string
	Line int
}

// Error implements error.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate override key %q (line %d)", e.Key, e.Line)
}

// UnmarshalYAML decodes the table from a YAML mapping, rejecting
// duplicate wire type keys.
func (t *OverrideTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("overrides must be a mapping of wire type name to native type")
	}

	result := make(OverrideTable, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("invalid override key: %w", err)
		}

		if _, ok := result[key]; ok {
			return &DuplicateKeyError{Key: key, Line: keyNode.Line}
		}

		var nt NativeType
		if err := valNode.Decode(&nt); err != nil {
			return fmt.Errorf("invalid override for %q: %w", key, err)
		}

		result[key] = nt
	}

	*t = result

	return nil
}

// NativeType describes the hand-written native type substituted for a
// generated wire type, plus the metadata the emitters need to call the
// conversion functions and handle zero values. It is the one
// descriptor shape shared by every target language; Kind and Zero only
// matter for targets that distinguish them.
type NativeType struct {
	// Kind classifies the native type (Go target only).
	Kind NativeKind `yaml:"kind,omitempty"`

	// Type is the literal type name as it will appear in generated
	// code, e.g. "time.Duration" or "java.util.Map<String, Long>".
	Type string `yaml:"type"`

	// Zero governs fast-path zero construction and testing.
	Zero ZeroPolicy `yaml:"zero,omitempty"`

	// ToNative overrides the derived wire-to-native conversion
	// function name.
	ToNative string `yaml:"toNative,omitempty"`

	// FromNative overrides the derived native-to-wire conversion
	// function name.
	FromNative string `yaml:"fromNative,omitempty"`

	// Imports lists the dependencies generated code needs to reference
	// Type and the conversion functions.
	Imports []ImportSpec `yaml:"imports,omitempty"`
}

// UnmarshalYAML accepts either the full descriptor object or the
// simple string form ("WireTime: org.joda.time.DateTime"), which sets
// only the type name.
func (n *NativeType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		*n = NativeType{Type: s}

		return nil
	}

	type rawNativeType NativeType // avoids recursing into this method

	var raw rawNativeType
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*n = NativeType(raw)

	return nil
}

// ImportSpec declares a dependency of an override.
type ImportSpec struct {
	// Path is the import path, e.g. "time".
	Path string `yaml:"path"`

	// Name is the local name generated code uses to reference the
	// import. Defaults to the last path element when empty.
	Name string `yaml:"name,omitempty"`
}
