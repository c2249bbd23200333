package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binding-generator/internal/diagnostic"
	"binding-generator/internal/idl"
)

// buildTestRegistry creates the wire types of a small clock package
// for validation tests.
func buildTestRegistry() *idl.Registry {
	reg := idl.NewRegistry("clock")

	for _, def := range []*idl.TypeDef{
		{Name: "Duration", Kind: idl.KindStruct},
		{Name: "Deadline", Kind: idl.KindStruct},
		{Name: "WireTime", Kind: idl.KindStruct},
		{Name: "Samples", Kind: idl.KindList, Elem: idl.KindFloat},
		{Name: "Labels", Kind: idl.KindMap, Key: idl.KindString},
		{Name: "Level", Kind: idl.KindEnum},
	} {
		if err := reg.Define(def); err != nil {
			panic(err)
		}
	}

	return reg
}

func mustParse(t *testing.T, yaml string) *Config {
	t.Helper()

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return cfg
}

func TestValidate_DurationOverride(t *testing.T) {
	yaml := `
go:
  overrides:
    Duration:
      kind: struct
      type: time.Duration
      zero: {mode: unique}
      imports:
        - {path: time, name: time}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.True(t, diags.IsValid(), "expected valid config, got errors: %v", diags.Errors)
	require.NotNil(t, validated)

	overrides := validated.OverridesFor(GenLanguageGo)
	require.Len(t, overrides, 1)

	ro := overrides[0]
	assert.Equal(t, "Duration", ro.WireType)
	assert.False(t, ro.Optional)
	assert.Equal(t, "DurationToNative", ro.ToNative)
	assert.Equal(t, "DurationFromNative", ro.FromNative)
	assert.Equal(t, []ImportSpec{{Path: "time", Name: "time"}}, ro.Imports)
	assert.Equal(t, ZeroCheck{Form: ZeroCheckNone}, ro.Zero)
}

func TestValidate_CanonicalWithoutIsZero(t *testing.T) {
	yaml := `
go:
  overrides:
    Duration:
      kind: struct
      type: time.Duration
      zero: {mode: canonical}
      imports:
        - {path: time, name: time}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	assert.Nil(t, validated)
	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeInvalidZeroPolicy, diags.Errors[0].Code)
	assert.Equal(t, "go", diags.Errors[0].Language)
	assert.Equal(t, "Duration", diags.Errors[0].WireType)
}

func TestValidate_UnknownWireType(t *testing.T) {
	yaml := `
go:
  overrides:
    Frobnicate:
      type: time.Duration
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	assert.Nil(t, validated)
	require.Len(t, diags.Errors, 1, "exactly one error naming the type and language")

	e := diags.Errors[0]
	assert.Equal(t, diagnostic.CodeUnknownWireType, e.Code)
	assert.Equal(t, "go", e.Language)
	assert.Equal(t, "Frobnicate", e.WireType)
	assert.Contains(t, e.Message, `"Frobnicate"`)
}

func TestValidate_IndependentLanguageTables(t *testing.T) {
	// The same wire type may carry different overrides per language,
	// and an invalid entry in one table must not block the others.
	yaml := `
go:
  overrides:
    Frobnicate:
      type: time.Duration
java:
  overrides:
    Duration: org.joda.time.Duration
swift:
  overrides:
    Duration: TimeInterval
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	assert.Nil(t, validated, "errors anywhere reject the config")
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "go", diags.Errors[0].Language)
}

func TestValidate_FailFast(t *testing.T) {
	yaml := `
go:
  overrides:
    Frobnicate:
      type: time.Duration
java:
  overrides:
    AlsoMissing: java.lang.Long
`
	cfg := mustParse(t, yaml)

	_, diags := Validate(cfg, buildTestRegistry(), Options{})
	assert.Len(t, diags.Errors, 2, "default policy collects every table's errors")

	_, fastDiags := Validate(cfg, buildTestRegistry(), Options{FailFast: true})
	require.Len(t, fastDiags.Errors, 1, "fail-fast stops at the first table with errors")
	assert.Equal(t, "go", fastDiags.Errors[0].Language)
}

func TestValidate_KindMismatch(t *testing.T) {
	yaml := `
go:
  overrides:
    Labels:
      kind: string
      type: mylabels.Set
      imports:
        - {path: example.com/mylabels, name: mylabels}
`
	cfg := mustParse(t, yaml)

	// Default policy: mismatch is a warning, config still validates.
	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.NotNil(t, validated)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeKindMismatch, diags.Warnings[0].Code)
	assert.Contains(t, diags.Warnings[0].Message, "map")

	// Strict policy escalates the mismatch to an error.
	validated, diags = Validate(cfg, buildTestRegistry(), Options{StrictKinds: true})
	assert.Nil(t, validated)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeKindMismatch, diags.Errors[0].Code)
}

func TestValidate_MissingNativeTypeName(t *testing.T) {
	yaml := `
go:
  overrides:
    Duration:
      kind: struct
      zero: {mode: unique}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	assert.Nil(t, validated)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeInvalidNativeType, diags.Errors[0].Code)
}

func TestValidate_UnusedImportWarning(t *testing.T) {
	yaml := `
go:
  overrides:
    Duration:
      kind: struct
      type: time.Duration
      imports:
        - {path: time, name: time}
        - {path: example.com/spare, name: spare}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.NotNil(t, validated)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnusedImport, diags.Warnings[0].Code)
	assert.Contains(t, diags.Warnings[0].Message, "example.com/spare")
}

func TestValidate_ImportReferencedByConversionFn(t *testing.T) {
	// An import only referenced by a renamed conversion function is
	// still in use.
	yaml := `
go:
  overrides:
    WireTime:
      kind: struct
      type: time.Time
      zero: {mode: canonical, isZero: .IsZero()}
      toNative: timeutil.WireToTime
      fromNative: timeutil.TimeToWire
      imports:
        - {path: time, name: time}
        - {path: example.com/timeutil, name: timeutil}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.NotNil(t, validated)
	assert.Empty(t, diags.Warnings)
}

func TestValidate_InvalidImport(t *testing.T) {
	yaml := `
go:
  overrides:
    Duration:
      kind: struct
      type: time.Duration
      imports:
        - {path: ""}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	assert.Nil(t, validated)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeInvalidImport, diags.Errors[0].Code)
}

func TestValidate_ConflictingImportNames(t *testing.T) {
	yaml := `
go:
  overrides:
    WireTime:
      kind: struct
      type: time.Time
      zero: {mode: canonical, isZero: .IsZero()}
      imports:
        - {path: time, name: time}
        - {path: example.com/other/time, name: time}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.NotNil(t, validated, "conflicts are a downstream generation concern, not a schema error")
	require.NotEmpty(t, diags.Warnings)
	assert.Equal(t, diagnostic.CodeConflictingImport, diags.Warnings[0].Code)
}

func TestValidate_FunctionIsZeroFlagged(t *testing.T) {
	yaml := `
go:
  overrides:
    WireTime:
      kind: struct
      type: timeutil.Time
      zero: {mode: unknown, isZero: timeutil.IsZero}
      imports:
        - {path: example.com/timeutil, name: timeutil}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.NotNil(t, validated, "function form is valid at the schema level")

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeFunctionIsZeroDeferred, diags.Infos[0].Code)

	overrides := validated.OverridesFor(GenLanguageGo)
	require.Len(t, overrides, 1)
	assert.Equal(t, ZeroCheckFunction, overrides[0].Zero.Form)
}

func TestValidate_OptionalWireKey(t *testing.T) {
	yaml := `
go:
  overrides:
    "*Deadline":
      kind: pointer
      type: "*time.Time"
      zero: {mode: canonical, isZero: .IsZero()}
      imports:
        - {path: time, name: time}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.True(t, diags.IsValid(), "errors: %v", diags.Errors)

	overrides := validated.OverridesFor(GenLanguageGo)
	require.Len(t, overrides, 1)
	assert.Equal(t, "Deadline", overrides[0].WireType)
	assert.True(t, overrides[0].Optional)
	assert.Equal(t, "DeadlineToNative", overrides[0].ToNative, "derived names drop the optional marker")
}

func TestValidate_JavaRenames(t *testing.T) {
	yaml := `
java:
  wireTypeRenames:
    Duration: WireDuration
    Deadline: WireDeadline
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.True(t, diags.IsValid())
	assert.Equal(t, "WireDuration", validated.JavaRename("Duration"))
	assert.Equal(t, "WireTime", validated.JavaRename("WireTime"), "unrenamed types pass through")
}

func TestValidate_JavaRenameConflicts(t *testing.T) {
	yaml := `
java:
  wireTypeRenames:
    Duration: Renamed
    Deadline: Renamed
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	assert.Nil(t, validated)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeConflictingRename, diags.Errors[0].Code)
}

func TestValidate_JavaRenameUnknownSource(t *testing.T) {
	yaml := `
java:
  wireTypeRenames:
    Frobnicate: Renamed
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.NotNil(t, validated)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnknownRenameSource, diags.Warnings[0].Code)
}

func TestValidate_StructTags(t *testing.T) {
	yaml := `
go:
  structTags:
    Duration:
      - {field: Seconds, tag: 'json:"seconds"'}
    Frobnicate:
      - {field: X, tag: 'json:"x"'}
`
	cfg := mustParse(t, yaml)

	validated, diags := Validate(cfg, buildTestRegistry(), Options{})
	require.NotNil(t, validated)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnknownStructTagType, diags.Warnings[0].Code)
	assert.Equal(t, "Frobnicate", diags.Warnings[0].WireType)

	tags := validated.StructTagsFor("Duration")
	require.Len(t, tags, 1)
	assert.Equal(t, "Seconds", tags[0].Field)
}

func TestValidate_NilInputs(t *testing.T) {
	validated, diags := Validate(nil, buildTestRegistry(), Options{})
	assert.Nil(t, validated)
	assert.True(t, diags.HasErrors())

	validated, diags = Validate(&Config{}, nil, Options{})
	assert.Nil(t, validated)
	assert.True(t, diags.HasErrors())
}

func TestValidate_EmptyConfig(t *testing.T) {
	validated, diags := Validate(&Config{}, buildTestRegistry(), Options{})
	require.True(t, diags.IsValid())
	require.NotNil(t, validated)
	assert.Empty(t, validated.OverridesFor(GenLanguageGo))
	assert.Empty(t, validated.OverridesFor(GenLanguageJavascript))
}
