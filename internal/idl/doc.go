// Package idl models the wire-type definitions a config file is
// resolved against.
//
// The real IDL front end (parser and type checker) is an external
// collaborator; config validation only needs its name-to-definition
// lookup, captured here as the Resolver interface. Registry is an
// in-memory implementation fed either by the front end or by a YAML
// manifest (see manifest.go), which is what the CLI and tests use.
//
// Key types:
//   - TypeKind: structural shape of a wire type (struct/map/list/...)
//   - TypeDef: a named wire type defined in the owning package
//   - Registry: per-package name -> TypeDef lookup
package idl
