package config

// Validated is a config that passed validation. It is terminal and
// immutable: emitters read from it, nothing writes to it.
// Re-validation always starts again from the authored Config.
type Validated struct {
	cfg       *Config
	overrides map[GenLanguage][]ResolvedOverride
}

// Config returns the underlying authored config. Callers must treat it
// as read-only.
func (v *Validated) Config() *Config {
	return v.cfg
}

// EffectiveLanguages computes the target list for a generation run
// from the declared language restriction and the caller's request.
func (v *Validated) EffectiveLanguages(requested []GenLanguage) ([]GenLanguage, error) {
	return v.cfg.Languages.Effective(requested)
}

// OverridesFor returns the resolved overrides for a language, ordered
// by wire type name. Languages without override capability return nil.
func (v *Validated) OverridesFor(lang GenLanguage) []ResolvedOverride {
	return v.overrides[lang]
}

// StructTagsFor returns the Go struct tags declared for a wire type.
func (v *Validated) StructTagsFor(wireType string) []StructTag {
	return v.cfg.Go.StructTags[wireType]
}

// JavaRename returns the Java rename for a wire type, or the name
// unchanged if no rename is declared.
func (v *Validated) JavaRename(wireType string) string {
	if renamed, ok := v.cfg.Java.WireTypeRenames[wireType]; ok {
		return renamed
	}

	return wireType
}
