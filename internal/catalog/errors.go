package catalog

import (
	"errors"
	"fmt"
)

// ErrIntegrity marks every load-time data problem.
var ErrIntegrity = errors.New("catalog integrity violation")

// IntegrityError describes one problem found while building a catalog.
type IntegrityError struct {
	Entity string // "location", "retreat", ...
	Key    string // code, slug or name of the offending entry
	Field  string
	Reason string
}

func (e *IntegrityError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s %q: %s", e.Entity, e.Key, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s: %s", e.Entity, e.Key, e.Field, e.Reason)
}

// Unwrap lets callers test for ErrIntegrity with errors.Is.
func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}

// problems accumulates integrity errors during Build.
type problems []error

func (p *problems) add(entity, key, field, reason string) {
	*p = append(*p, &IntegrityError{Entity: entity, Key: key, Field: field, Reason: reason})
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return errors.Join(p...)
}
