package config

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/module"

	"binding-generator/internal/common"
	"binding-generator/internal/diagnostic"
	"binding-generator/internal/idl"
)

// validateOverride validates a single override table entry.
func validateOverride(
	res *diagnostic.Diagnostics,
	lang GenLanguage,
	key string,
	nt *NativeType,
	resolver idl.Resolver,
	opts Options,
) {
	langStr := lang.String()

	wire, optional := splitWireKey(key)
	if wire == "" {
		res.AddError(diagnostic.CodeUnknownWireType, "override key must name a wire type", langStr, key)
		return
	}

	def := resolver.ResolveWireType(wire)
	if def == nil {
		res.AddError(diagnostic.CodeUnknownWireType,
			fmt.Sprintf("wire type %q is not defined in the owning package", wire), langStr, wire)

		return
	}

	if nt.Type == "" {
		res.AddError(diagnostic.CodeInvalidNativeType,
			"override must declare a native type name", langStr, wire)
	}

	if err := nt.Zero.Check(); err != nil {
		res.AddError(diagnostic.CodeInvalidZeroPolicy, err.Error(), langStr, wire)
	}

	// Only the Go target distinguishes native kinds; for other targets
	// the field is ignored. The optional form of a wire type has
	// optional shape regardless of the base kind.
	wireKind := def.Kind
	if optional {
		wireKind = idl.KindOptional
	}

	if lang == GenLanguageGo && nt.Kind != NativeKindUnspecified && !kindCompatible(nt.Kind, wireKind) {
		msg := fmt.Sprintf("native kind %s is inconsistent with %s-shaped wire type %q",
			strings.ToLower(nt.Kind.String()), wireKind, wire)

		if opts.StrictKinds {
			res.AddError(diagnostic.CodeKindMismatch, msg, langStr, wire)
		} else {
			res.AddWarning(diagnostic.CodeKindMismatch, msg, langStr, wire)
		}
	}

	validateImports(res, lang, wire, nt)

	if check := nt.Zero.ResolveCheck(); check.Form == ZeroCheckFunction {
		res.AddInfo(diagnostic.CodeFunctionIsZeroDeferred,
			fmt.Sprintf("isZero function %q is accepted but not yet emitted by the generators", check.Expr),
			langStr, wire)
	}
}

// kindCompatible reports whether a declared native kind can represent
// a wire type of the given structural shape. The mapping is permissive
// where generated code does not care (iface matches everything); the
// escape hatch for deliberate mismatches is non-strict validation,
// which downgrades the finding to a warning.
func kindCompatible(nk NativeKind, wk idl.TypeKind) bool {
	switch nk {
	case NativeKindBool:
		return wk == idl.KindBool
	case NativeKindNumber:
		return wk.IsNumeric() || wk == idl.KindEnum
	case NativeKindString:
		return wk == idl.KindString || wk == idl.KindEnum
	case NativeKindArray:
		return wk == idl.KindArray
	case NativeKindSlice:
		return wk == idl.KindList || wk == idl.KindSet || wk == idl.KindArray
	case NativeKindMap:
		return wk == idl.KindMap || wk == idl.KindSet
	case NativeKindPointer:
		return wk == idl.KindOptional || wk == idl.KindUnion
	case NativeKindStruct:
		return wk == idl.KindStruct || wk.IsNumeric()
	case NativeKindIface:
		return true
	default:
		return true
	}
}

// validateImports checks import declarations for one override entry.
func validateImports(res *diagnostic.Diagnostics, lang GenLanguage, wire string, nt *NativeType) {
	langStr := lang.String()

	nameByPath := make(map[string]string, len(nt.Imports))
	pathByName := make(map[string]string, len(nt.Imports))

	for _, imp := range nt.Imports {
		if imp.Path == "" {
			res.AddError(diagnostic.CodeInvalidImport, "import path must not be empty", langStr, wire)
			continue
		}

		if lang == GenLanguageGo {
			if err := module.CheckImportPath(imp.Path); err != nil {
				res.AddError(diagnostic.CodeInvalidImport,
					fmt.Sprintf("invalid Go import path %q: %v", imp.Path, err), langStr, wire)

				continue
			}
		}

		name := imp.Name
		if name == "" {
			name = common.PkgAlias(imp.Path)
		}

		if prev, ok := nameByPath[imp.Path]; ok && prev != name {
			res.AddWarning(diagnostic.CodeConflictingImport,
				fmt.Sprintf("import %q declared with conflicting local names %q and %q", imp.Path, prev, name),
				langStr, wire)
		} else {
			nameByPath[imp.Path] = name
		}

		if prevPath, ok := pathByName[name]; ok && prevPath != imp.Path {
			res.AddWarning(diagnostic.CodeConflictingImport,
				fmt.Sprintf("local name %q used for both %q and %q", name, prevPath, imp.Path),
				langStr, wire)
		} else {
			pathByName[name] = imp.Path
		}

		if !importReferenced(nt, name) {
			res.AddWarning(diagnostic.CodeUnusedImport,
				fmt.Sprintf("import %q is never referenced by the override", imp.Path), langStr, wire)
		}
	}
}

// importReferenced reports whether the import's local name prefixes
// any reference the emitted code will contain: the native type name,
// either conversion function, or the function form of the zero test.
func importReferenced(nt *NativeType, localName string) bool {
	prefix := localName + "."
	if strings.Contains(nt.Type, prefix) ||
		strings.Contains(nt.ToNative, prefix) ||
		strings.Contains(nt.FromNative, prefix) {
		return true
	}

	check := nt.Zero.ResolveCheck()

	return check.Form == ZeroCheckFunction && strings.Contains(check.Expr, prefix)
}

// validateStructTags checks that Go struct tag declarations name
// defined wire types and non-empty fields.
func validateStructTags(res *diagnostic.Diagnostics, tags map[string][]StructTag, resolver idl.Resolver) {
	langStr := GenLanguageGo.String()

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if resolver.ResolveWireType(name) == nil {
			res.AddWarning(diagnostic.CodeUnknownStructTagType,
				fmt.Sprintf("structTags entry %q does not name a defined wire type", name), langStr, name)
		}

		for _, tag := range tags[name] {
			if tag.Field == "" {
				res.AddError(diagnostic.CodeUnknownStructTagType,
					fmt.Sprintf("structTags entry %q has a tag with no field name", name), langStr, name)
			}
		}
	}
}

// validateRenames checks Java wire type renames: sources must be
// defined wire types and two sources must not rename to the same
// target.
func validateRenames(res *diagnostic.Diagnostics, renames map[string]string, resolver idl.Resolver) {
	langStr := GenLanguageJava.String()

	sources := make([]string, 0, len(renames))
	for src := range renames {
		sources = append(sources, src)
	}

	sort.Strings(sources)

	sourceByTarget := make(map[string]string, len(renames))

	for _, src := range sources {
		if resolver.ResolveWireType(src) == nil {
			res.AddWarning(diagnostic.CodeUnknownRenameSource,
				fmt.Sprintf("wireTypeRenames entry %q does not name a defined wire type", src), langStr, src)
		}

		target := renames[src]
		if target == "" {
			res.AddError(diagnostic.CodeConflictingRename,
				fmt.Sprintf("wire type %q renamed to an empty name", src), langStr, src)

			continue
		}

		if prev, ok := sourceByTarget[target]; ok {
			res.AddError(diagnostic.CodeConflictingRename,
				fmt.Sprintf("wire types %q and %q both renamed to %q", prev, src, target), langStr, src)

			continue
		}

		sourceByTarget[target] = src
	}
}
