package config

import (
	"strings"

	"binding-generator/internal/common"
)

// ResolvedOverride is an override entry with all derived metadata
// filled in: conversion function names, deduplicated imports, and the
// IsZero expression resolved into its tagged variant. This is the form
// handed to emitters.
type ResolvedOverride struct {
	// WireType is the wire type name, without the optional marker.
	WireType string

	// Optional is true when the entry was declared with a "*"-prefixed
	// key, overriding the optional form of the wire type.
	Optional bool

	// Native is the descriptor as authored.
	Native NativeType

	// ToNative is the wire-to-native conversion function name.
	ToNative string

	// FromNative is the native-to-wire conversion function name.
	FromNative string

	// Imports is the deduplicated import list, in declaration order,
	// with local names defaulted.
	Imports []ImportSpec

	// Zero is the resolved zero-test variant.
	Zero ZeroCheck
}

// splitWireKey splits an override table key into the wire type name
// and the optional marker.
func splitWireKey(key string) (wire string, optional bool) {
	if strings.HasPrefix(key, "*") {
		return strings.TrimPrefix(key, "*"), true
	}

	return key, false
}

// resolveOverride derives the unspecified metadata for one entry.
// Derivation is deterministic: the same key and descriptor always
// produce the same resolved form.
func resolveOverride(key string, nt NativeType) ResolvedOverride {
	wire, optional := splitWireKey(key)

	ro := ResolvedOverride{
		WireType: wire,
		Optional: optional,
		Native:   nt,
		Zero:     nt.Zero.ResolveCheck(),
	}

	ro.ToNative = nt.ToNative
	if ro.ToNative == "" {
		ro.ToNative = wire + "ToNative"
	}

	ro.FromNative = nt.FromNative
	if ro.FromNative == "" {
		ro.FromNative = wire + "FromNative"
	}

	ro.Imports = dedupeImports(nt.Imports)

	return ro
}

// dedupeImports drops exact duplicates, preserving declaration order,
// and defaults empty local names to the last path element. Duplicates
// with conflicting local names are kept; validation warns about them,
// since resolving the conflict is a downstream generation concern.
func dedupeImports(imports []ImportSpec) []ImportSpec {
	if common.IsEmpty(imports) {
		return nil
	}

	seen := make(map[ImportSpec]bool, len(imports))
	result := make([]ImportSpec, 0, len(imports))

	for _, imp := range imports {
		if imp.Name == "" {
			imp.Name = common.PkgAlias(imp.Path)
		}

		if seen[imp] {
			continue
		}

		seen[imp] = true
		result = append(result, imp)
	}

	return result
}
