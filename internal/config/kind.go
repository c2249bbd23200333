package config

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=NativeKind -trimprefix NativeKind

// NativeKind classifies the native type an override substitutes for
// the generated wire representation. It drives zero-value construction
// in generated code (e.g. composite kinds cannot use an untyped zero).
// Only the Go target currently distinguishes kinds; for other targets
// the field is ignored.
type NativeKind int

const (
	NativeKindUnspecified NativeKind = iota
	NativeKindStruct
	NativeKindBool
	NativeKindNumber
	NativeKindString
	NativeKindArray
	NativeKindSlice
	NativeKindMap
	NativeKindPointer
	NativeKindIface
)

// NativeKindFromString parses a NativeKind from its config-file name
// (lowercase, e.g. "struct", "iface").
func NativeKindFromString(s string) (NativeKind, error) {
	for k := NativeKindUnspecified; k <= NativeKindIface; k++ {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}

	return NativeKindUnspecified, fmt.Errorf("unknown native kind %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *NativeKind) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	kind, err := NativeKindFromString(s)
	if err != nil {
		return err
	}

	*k = kind

	return nil
}

// MarshalYAML emits the lowercase config-file name.
func (k NativeKind) MarshalYAML() (any, error) {
	return strings.ToLower(k.String()), nil
}

// IsComposite returns true for kinds whose zero value needs a composite
// literal (no untyped zero exists).
func (k NativeKind) IsComposite() bool {
	return k == NativeKindStruct || k == NativeKindArray
}
