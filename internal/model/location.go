package model

import (
	"slices"
	"strings"
)

// Region groups locations for "nearby" navigation.
type Region string

const (
	RegionNorthAmerica   Region = "North America"
	RegionEurope         Region = "Europe"
	RegionCentralAmerica Region = "Central America"
	RegionSouthAmerica   Region = "South America"
	RegionAsia           Region = "Asia"
	RegionAfrica         Region = "Africa"
)

// Regions lists the accepted region values.
var Regions = []Region{
	RegionNorthAmerica,
	RegionEurope,
	RegionCentralAmerica,
	RegionSouthAmerica,
	RegionAsia,
	RegionAfrica,
}

// IsValid reports whether r is one of the known regions.
func (r Region) IsValid() bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

// Location is one country entry of the location registry.
type Location struct {
	Code        string   `json:"code" yaml:"code" toml:"code"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Region      Region   `json:"region" yaml:"region" toml:"region"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty" yaml:"highlights,omitempty" toml:"highlights,omitempty"`
}

// Clone returns a copy of l that shares no memory with it.
func (l Location) Clone() Location {
	l.Highlights = slices.Clone(l.Highlights)
	return l
}

// Validate checks the location's own fields.
func (l *Location) Validate() []FieldError {
	var errors []FieldError

	if l.Code == "" {
		errors = append(errors, FieldError{Field: "code", Message: "code is required"})
	} else if l.Code != strings.ToUpper(strings.TrimSpace(l.Code)) {
		errors = append(errors, FieldError{Field: "code", Message: "code must be upper case without spaces"})
	}
	if strings.TrimSpace(l.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	}
	if !l.Region.IsValid() {
		errors = append(errors, FieldError{Field: "region", Message: "unknown region '" + string(l.Region) + "'"})
	}

	return errors
}
