package model

import "strings"

// RetreatType is a retreat modality, e.g. "Silent Retreat" or "Monastery Stay".
type RetreatType struct {
	Slug        string `json:"slug" yaml:"slug" toml:"slug"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"` // Emoji glyph
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Clone returns a copy of t. RetreatType holds no reference fields.
func (t RetreatType) Clone() RetreatType {
	return t
}

// Validate checks the type's own fields. Slug normal form is checked by the
// catalog builder since it owns the slug codec.
func (t *RetreatType) Validate() []FieldError {
	var errors []FieldError

	if t.Slug == "" {
		errors = append(errors, FieldError{Field: "slug", Message: "slug is required"})
	}
	if strings.TrimSpace(t.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	}

	return errors
}
