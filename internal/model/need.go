package model

import (
	"slices"
	"strings"
)

// NeedCategory is one "what you need" page (burnout, grief, quiet...). It is
// editorial: retreats are not joined to it.
type NeedCategory struct {
	Slug         string       `json:"slug" yaml:"slug" toml:"slug"`
	Title        string       `json:"title" yaml:"title" toml:"title"`
	Headline     string       `json:"headline,omitempty" yaml:"headline,omitempty" toml:"headline,omitempty"`
	Subtitle     string       `json:"subtitle,omitempty" yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	WhatToExpect []string     `json:"what_to_expect,omitempty" yaml:"what_to_expect,omitempty" toml:"what_to_expect,omitempty"`
	WhoItsFor    []string     `json:"who_its_for,omitempty" yaml:"who_its_for,omitempty" toml:"who_its_for,omitempty"`
	Samples      []NeedSample `json:"samples,omitempty" yaml:"samples,omitempty" toml:"samples,omitempty"`
	Related      []string     `json:"related,omitempty" yaml:"related,omitempty" toml:"related,omitempty"` // NeedCategory slugs
	Theme        Theme        `json:"theme" yaml:"theme" toml:"theme"`
}

// NeedSample is an illustrative entry shown on a need page.
type NeedSample struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Place string `json:"place,omitempty" yaml:"place,omitempty" toml:"place,omitempty"`
	Price int    `json:"price" yaml:"price" toml:"price"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty" toml:"note,omitempty"`
}

// Theme holds the visual tokens a presenter uses for a need page.
type Theme struct {
	Accent   string `json:"accent,omitempty" yaml:"accent,omitempty" toml:"accent,omitempty"`
	Gradient string `json:"gradient,omitempty" yaml:"gradient,omitempty" toml:"gradient,omitempty"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
}

// Clone returns a copy of n that shares no memory with it.
func (n NeedCategory) Clone() NeedCategory {
	n.WhatToExpect = slices.Clone(n.WhatToExpect)
	n.WhoItsFor = slices.Clone(n.WhoItsFor)
	n.Samples = slices.Clone(n.Samples)
	n.Related = slices.Clone(n.Related)
	return n
}

// Validate checks the need's own fields. Related slugs are resolved by the
// catalog builder.
func (n *NeedCategory) Validate() []FieldError {
	var errors []FieldError

	if n.Slug == "" {
		errors = append(errors, FieldError{Field: "slug", Message: "slug is required"})
	}
	if strings.TrimSpace(n.Title) == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	}
	for _, rel := range n.Related {
		if rel == n.Slug {
			errors = append(errors, FieldError{Field: "related", Message: "a need cannot be related to itself"})
			break
		}
	}
	for _, s := range n.Samples {
		if s.Price < 0 {
			errors = append(errors, FieldError{Field: "samples", Message: "sample price must be 0 or greater"})
			break
		}
	}

	return errors
}
