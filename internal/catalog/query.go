package catalog

import (
	"sort"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// ByCountry returns the retreats located in the given country code.
func (c *Catalog) ByCountry(code string) []model.Retreat {
	return c.pick(c.byCountry[code])
}

// ByType returns the retreats whose type reference equals typeSlug.
// Uncategorised retreats never match.
func (c *Catalog) ByType(typeSlug string) []model.Retreat {
	if typeSlug == "" {
		return []model.Retreat{}
	}
	return c.pick(c.byType[typeSlug])
}

// ByTier returns the retreats whose price falls in the tier.
func (c *Catalog) ByTier(id model.TierID) []model.Retreat {
	return c.pick(c.byTier[id])
}

// ByFlag returns the retreats with the given flag set.
func (c *Catalog) ByFlag(f model.Flag) []model.Retreat {
	return c.pick(c.byFlag[f])
}

// Filter combines facets. Zero-valued fields do not constrain; set fields are
// intersected.
type Filter struct {
	Country string
	Type    string
	Tier    model.TierID
	Flags   []model.Flag
}

// Find returns the retreats matching every set field of f, in definition
// order.
func (c *Catalog) Find(f Filter) []model.Retreat {
	out := make([]model.Retreat, 0)
	for _, r := range c.retreats {
		if f.Country != "" && r.Country != f.Country {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if f.Tier != "" {
			tier, ok := model.LookupTier(f.Tier)
			if !ok || !tier.Contains(r.Price) {
				continue
			}
		}
		if !hasAllFlags(r, f.Flags) {
			continue
		}
		out = append(out, r.Clone())
	}
	return out
}

func hasAllFlags(r model.Retreat, flags []model.Flag) bool {
	for _, f := range flags {
		if !r.HasFlag(f) {
			return false
		}
	}
	return true
}

// Intersect returns the elements of a whose slug also appears in b, keeping
// a's order.
func Intersect(a, b []model.Retreat) []model.Retreat {
	in := make(map[string]bool, len(b))
	for _, r := range b {
		in[r.Slug] = true
	}
	out := make([]model.Retreat, 0)
	for _, r := range a {
		if in[r.Slug] {
			out = append(out, r)
		}
	}
	return out
}

// SortByPrice returns rs ordered by ascending price. Equal prices keep
// catalog definition order regardless of the order of rs. Retreats not from
// this catalog sort after those that are, among equal prices.
func (c *Catalog) SortByPrice(rs []model.Retreat) []model.Retreat {
	out := make([]model.Retreat, len(rs))
	copy(out, rs)
	ordinal := func(r model.Retreat) int {
		if i, ok := c.bySlug[r.Slug]; ok {
			return i
		}
		return len(c.retreats)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return ordinal(out[i]) < ordinal(out[j])
	})
	return out
}
