package config

import (
	"errors"
	"strings"

	"binding-generator/internal/common"
)

// ZeroMode describes how the native type's default value relates to the
// wire type's zero value. The default is ZeroModeUnique: a bare
// override declares that the native zero value is the only
// representation of the wire zero value.
type ZeroMode int

const (
	// ZeroModeUnique means the native default value is the only
	// representation of the wire zero value. Both zero construction and
	// zero testing can skip the conversion functions.
	ZeroModeUnique ZeroMode = iota

	// ZeroModeCanonical means the native default value is a
	// representation of the wire zero value, but not the only one.
	// Zero construction can use the native default; zero testing must
	// evaluate IsZero, since a non-default native value may also be
	// logically zero.
	ZeroModeCanonical

	// ZeroModeUnknown means neither fast path is safe; all zero
	// handling goes through the conversion functions, and IsZero is
	// mandatory for testing.
	ZeroModeUnknown
)

// String returns the mode name as used in config files.
func (m ZeroMode) String() string {
	switch m {
	case ZeroModeUnique:
		return "unique"
	case ZeroModeCanonical:
		return "canonical"
	case ZeroModeUnknown:
		return "unknown"
	default:
		return common.UnknownStr
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *ZeroMode) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	switch s {
	case "unique":
		*m = ZeroModeUnique
	case "canonical":
		*m = ZeroModeCanonical
	case "unknown":
		*m = ZeroModeUnknown
	default:
		return errors.New("zero mode must be one of unique, canonical, unknown")
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m ZeroMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// ZeroPolicy governs whether generated code may construct or test the
// wire zero value without a full wire-to-native conversion.
type ZeroPolicy struct {
	// Mode relates the native default value to the wire zero value.
	Mode ZeroMode `yaml:"mode,omitempty"`

	// IsZero tests whether a native value is the wire zero value.
	// A leading "." makes it a field or method expression applied to a
	// native value (e.g. ".IsZero()"); otherwise it names a free
	// function called with the native value as its sole argument.
	// Either way it must yield a boolean.
	IsZero string `yaml:"isZero,omitempty"`
}

// Check enforces the policy invariant: unless the mode is unique, an
// IsZero expression is required, because the generator has no other way
// to decide when a native value is the wire zero value.
func (p ZeroPolicy) Check() error {
	if p.Mode != ZeroModeUnique && p.IsZero == "" {
		return errors.New("zero policy must either be mode unique or carry a non-empty isZero expression")
	}

	return nil
}

// ZeroCheckForm discriminates the resolved IsZero variant.
type ZeroCheckForm int

const (
	// ZeroCheckNone means no IsZero expression is declared; the native
	// default value is compared directly (mode unique).
	ZeroCheckNone ZeroCheckForm = iota

	// ZeroCheckMember applies Expr as a field/method expression on a
	// native value.
	ZeroCheckMember

	// ZeroCheckFunction calls Expr as a free function with the native
	// value as its sole argument. Accepted at the schema level but not
	// yet emitted by the generators; validation flags its use.
	ZeroCheckFunction
)

// String returns a human-readable form name.
func (f ZeroCheckForm) String() string {
	switch f {
	case ZeroCheckNone:
		return "none"
	case ZeroCheckMember:
		return "member"
	case ZeroCheckFunction:
		return "function"
	default:
		return common.UnknownStr
	}
}

// ZeroCheck is the IsZero expression resolved into a tagged variant, so
// emitters never re-parse the string-prefix convention.
type ZeroCheck struct {
	Form ZeroCheckForm
	Expr string
}

// ResolveCheck resolves the IsZero dual form once, at validation time.
func (p ZeroPolicy) ResolveCheck() ZeroCheck {
	switch {
	case p.IsZero == "":
		return ZeroCheck{Form: ZeroCheckNone}
	case strings.HasPrefix(p.IsZero, "."):
		return ZeroCheck{Form: ZeroCheckMember, Expr: p.IsZero}
	default:
		return ZeroCheck{Form: ZeroCheckFunction, Expr: p.IsZero}
	}
}
