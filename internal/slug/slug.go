// Package slug turns display names into URL path segments.
//
// Make is the only normalisation used anywhere in the directory, so a name
// always maps to the same route across builds. Assign layers collision
// handling on top of it for retreats, whose names are not guaranteed unique.
package slug

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the alphanumeric runs of a slug.
const Separator = '-'

// ErrEmpty is returned when a name has no alphanumeric content to route by.
var ErrEmpty = errors.New("name produces an empty slug")

// Make lower-cases name, folds accented letters to their ASCII base, and
// collapses every run of other characters into a single separator. Leading
// and trailing separators are trimmed. Make(Make(s)) == Make(s).
func Make(name string) string {
	folded := fold(name)

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		default:
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteRune(Separator)
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsNormal reports whether s is already a non-empty slug.
func IsNormal(s string) bool {
	return s != "" && Make(s) == s
}

// fold strips combining marks after canonical decomposition, so "Café"
// becomes "Cafe". Letters without an ASCII decomposition are left alone and
// later dropped by Make.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Key is the input to Assign: the name to route by plus the attribute used to
// tell apart entries that share a name.
type Key struct {
	Name      string
	Qualifier string // e.g. a country code
}

// Assign returns one slug per key, in input order, with no duplicates.
//
// Names whose slug is unique keep it. Names that collide get the qualifier
// appended, and if that is still taken a counter starting at 2 is appended in
// input order. Unique bare slugs are reserved before any qualified slug is
// chosen, so a later entry can never take a slug another entry owns outright.
func Assign(keys []Key) ([]string, error) {
	base := make([]string, len(keys))
	counts := make(map[string]int, len(keys))
	var errs []error
	for i, k := range keys {
		base[i] = Make(k.Name)
		if base[i] == "" {
			errs = append(errs, fmt.Errorf("entry %d (%q): %w", i, k.Name, ErrEmpty))
			continue
		}
		counts[base[i]]++
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	used := make(map[string]bool, len(keys))
	for _, s := range base {
		if counts[s] == 1 {
			used[s] = true
		}
	}

	out := make([]string, len(keys))
	for i, s := range base {
		if counts[s] == 1 {
			out[i] = s
			continue
		}
		candidate := s
		if q := Make(keys[i].Qualifier); q != "" {
			candidate = s + string(Separator) + q
		}
		unique := candidate
		for n := 2; used[unique]; n++ {
			unique = fmt.Sprintf("%s%c%d", candidate, Separator, n)
		}
		used[unique] = true
		out[i] = unique
	}
	return out, nil
}
