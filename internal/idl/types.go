package idl

import (
	"fmt"
	"sort"

	"binding-generator/internal/common"
)

// TypeKind represents the structural shape of a wire type.
type TypeKind int

const (
	KindInvalid TypeKind = iota
	KindBool
	KindByte
	KindUint
	KindInt
	KindFloat
	KindString
	KindEnum
	KindArray
	KindList
	KindSet
	KindMap
	KindStruct
	KindUnion
	KindOptional
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindByte:
		return "byte"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindOptional:
		return "optional"
	default:
		return common.UnknownStr
	}
}

// KindFromString parses a TypeKind from its string name.
func KindFromString(s string) (TypeKind, error) {
	for k := KindBool; k <= KindOptional; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return KindInvalid, fmt.Errorf("unknown wire type kind %q", s)
}

// IsNumeric returns true for byte, uint, int, and float kinds.
func (k TypeKind) IsNumeric() bool {
	switch k {
	case KindByte, KindUint, KindInt, KindFloat:
		return true
	default:
		return false
	}
}

// IsComposite returns true for kinds with element structure.
func (k TypeKind) IsComposite() bool {
	switch k {
	case KindArray, KindList, KindSet, KindMap, KindStruct, KindUnion:
		return true
	default:
		return false
	}
}

// TypeDef describes a named wire type defined in an IDL package.
type TypeDef struct {
	// Name is the wire type name as written in the IDL source.
	Name string
	// Kind is the structural shape of the type.
	Kind TypeKind
	// Elem is the element kind for array/list/set/optional types.
	Elem TypeKind
	// Key is the key kind for map types.
	Key TypeKind
}

// String returns "Name(kind)".
func (d *TypeDef) String() string {
	return fmt.Sprintf("%s(%s)", d.Name, d.Kind)
}

// Resolver is the wire-type lookup the IDL front end exposes to
// config validation. Implementations must be safe for concurrent
// read access; validation may query them from multiple goroutines.
type Resolver interface {
	// ResolveWireType returns the definition for a wire type name
	// defined in the owning package, or nil if there is none.
	ResolveWireType(name string) *TypeDef
}

// Registry holds the wire types defined in a single IDL package.
// It is populated once and read-only afterwards.
type Registry struct {
	// Package is the IDL package name owning the definitions.
	Package string

	types map[string]*TypeDef
}

// NewRegistry creates an empty registry for the named package.
func NewRegistry(pkg string) *Registry {
	return &Registry{
		Package: pkg,
		types:   make(map[string]*TypeDef),
	}
}

// Define adds a type definition. Redefining a name is an error.
func (r *Registry) Define(def *TypeDef) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("type definition must have a name")
	}

	if _, ok := r.types[def.Name]; ok {
		return fmt.Errorf("type %q already defined in package %s", def.Name, r.Package)
	}

	r.types[def.Name] = def

	return nil
}

// ResolveWireType implements Resolver.
func (r *Registry) ResolveWireType(name string) *TypeDef {
	if r == nil {
		return nil
	}

	return r.types[name]
}

// Names returns all defined type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of defined types.
func (r *Registry) Len() int {
	return len(r.types)
}
