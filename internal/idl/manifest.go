package idl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of a package's wire-type definitions.
// It stands in for the IDL front end when running the CLI or tests
// without a compiled IDL package.
type Manifest struct {
	// Package is the IDL package name.
	Package string `yaml:"package"`

	// Types lists the wire types defined in the package.
	Types []ManifestType `yaml:"types"`
}

// ManifestType is one wire-type entry in a manifest.
type ManifestType struct {
	Name string   `yaml:"name"`
	Kind TypeKind `yaml:"kind"`
	Elem TypeKind `yaml:"elem,omitempty"`
	Key  TypeKind `yaml:"key,omitempty"`
}

// UnmarshalYAML parses a TypeKind from its lowercase string name.
func (k *TypeKind) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	kind, err := KindFromString(s)
	if err != nil {
		return err
	}

	*k = kind

	return nil
}

// MarshalYAML emits the lowercase string name.
func (k TypeKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// LoadManifest loads and parses a YAML wire-type manifest from the given path.
func LoadManifest(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read type manifest %s: %w", path, err)
	}

	return ParseManifest(data)
}

// ParseManifest parses YAML manifest data into a Registry.
func ParseManifest(data []byte) (*Registry, error) {
	var m Manifest

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse type manifest YAML: %w", err)
	}

	reg := NewRegistry(m.Package)

	for i := range m.Types {
		mt := &m.Types[i]
		if mt.Kind == KindInvalid {
			return nil, fmt.Errorf("type %q in manifest has no kind", mt.Name)
		}

		def := &TypeDef{Name: mt.Name, Kind: mt.Kind, Elem: mt.Elem, Key: mt.Key}
		if err := reg.Define(def); err != nil {
			return nil, fmt.Errorf("invalid type manifest: %w", err)
		}
	}

	return reg, nil
}
