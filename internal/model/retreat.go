package model

import (
	"slices"
	"strings"
)

// MaxPrice is the upper bound of the directory's price axis. Listings above
// it are out of scope for the site and rejected at load.
const MaxPrice = 1000

// Constraints
const (
	MaxRetreatNameLength = 120
	MaxRetreatTags       = 12
)

// Retreat is one listing in the directory.
type Retreat struct {
	// Slug is assigned by the catalog builder and never read from source data.
	Slug         string   `json:"slug" yaml:"-" toml:"-"`
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Country      string   `json:"country" yaml:"country" toml:"country"` // Location.Code
	Price        int      `json:"price" yaml:"price" toml:"price"`       // 0 = free / work-exchange
	Scholarship  bool     `json:"scholarship" yaml:"scholarship" toml:"scholarship"`
	SlidingScale bool     `json:"sliding_scale" yaml:"sliding_scale" toml:"sliding_scale"`
	WorkExchange bool     `json:"work_exchange" yaml:"work_exchange" toml:"work_exchange"`
	CommunityRun bool     `json:"community_run" yaml:"community_run" toml:"community_run"`
	Duration     string   `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	Type         string   `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"` // RetreatType.Slug, optional
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Website      string   `json:"website,omitempty" yaml:"website,omitempty" toml:"website,omitempty"`
}

// Clone returns a copy of r that shares no memory with it.
func (r Retreat) Clone() Retreat {
	r.Tags = slices.Clone(r.Tags)
	return r
}

// IsFree reports whether the retreat costs nothing to attend.
func (r Retreat) IsFree() bool {
	return r.Price == 0
}

// HasFlag reports whether the given boolean flag is set on the retreat.
// Unknown flags are never set.
func (r Retreat) HasFlag(f Flag) bool {
	switch f {
	case FlagScholarship:
		return r.Scholarship
	case FlagSlidingScale:
		return r.SlidingScale
	case FlagWorkExchange:
		return r.WorkExchange
	case FlagCommunityRun:
		return r.CommunityRun
	}
	return false
}

// Validate checks the retreat's own fields. References to other registries
// are checked by the catalog builder.
func (r *Retreat) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxRetreatNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 120 characters or less"})
	}
	if r.Country == "" {
		errors = append(errors, FieldError{Field: "country", Message: "country is required"})
	}
	if r.Price < 0 {
		errors = append(errors, FieldError{Field: "price", Message: "price must be 0 or greater"})
	} else if r.Price > MaxPrice {
		errors = append(errors, FieldError{Field: "price", Message: "price must be 1000 or less"})
	}
	if len(r.Tags) > MaxRetreatTags {
		errors = append(errors, FieldError{Field: "tags", Message: "at most 12 tags are allowed"})
	}

	return errors
}

// Flag names one of the boolean affordability attributes of a retreat.
type Flag string

const (
	FlagScholarship  Flag = "scholarship"
	FlagSlidingScale Flag = "sliding-scale"
	FlagWorkExchange Flag = "work-exchange"
	FlagCommunityRun Flag = "community-run"
)

// Flags lists every flag in display order.
var Flags = []Flag{FlagScholarship, FlagSlidingScale, FlagWorkExchange, FlagCommunityRun}

// ParseFlag maps a URL value to a Flag. The second result is false for
// anything unrecognised.
func ParseFlag(s string) (Flag, bool) {
	for _, f := range Flags {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
