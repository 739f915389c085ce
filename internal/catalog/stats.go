package catalog

import (
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// Stats summarises prices over a set of retreats.
//
// MinPrice and AvgPrice cover only paid retreats (price > 0); free entries
// would otherwise drag the average to zero. When PaidCount is 0 both are 0
// and mean "no paid data", not a price.
type Stats struct {
	MinPrice  int  `json:"min_price"`
	AvgPrice  int  `json:"avg_price"`
	HasFree   bool `json:"has_free"`
	PaidCount int  `json:"paid_count"`
	Count     int  `json:"count"`
}

// HasPaidData reports whether MinPrice and AvgPrice are meaningful.
func (s Stats) HasPaidData() bool {
	return s.PaidCount > 0
}

// PriceStats computes Stats over rs. The average is rounded half up to a
// whole currency unit.
func PriceStats(rs []model.Retreat) Stats {
	s := Stats{Count: len(rs)}
	sum := 0
	for _, r := range rs {
		if r.Price == 0 {
			s.HasFree = true
			continue
		}
		if s.PaidCount == 0 || r.Price < s.MinPrice {
			s.MinPrice = r.Price
		}
		sum += r.Price
		s.PaidCount++
	}
	if s.PaidCount > 0 {
		s.AvgPrice = (sum + s.PaidCount/2) / s.PaidCount
	}
	return s
}

// DistinctCountries counts the unique country codes in rs.
func DistinctCountries(rs []model.Retreat) int {
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		seen[r.Country] = struct{}{}
	}
	return len(seen)
}

// RelatedLocations returns the other locations in the same region as the
// location with the given code, in registry order. An unknown code yields an
// empty slice.
func (c *Catalog) RelatedLocations(code string) []model.Location {
	out := make([]model.Location, 0)
	loc, ok := c.Locations.Get(code)
	if !ok {
		return out
	}
	for _, l := range c.Locations.entries {
		if l.Region == loc.Region && l.Code != loc.Code {
			out = append(out, l)
		}
	}
	return out
}

// RelatedNeeds resolves the related slugs of a need category, in the order
// the need lists them.
func (c *Catalog) RelatedNeeds(needSlug string) []model.NeedCategory {
	out := make([]model.NeedCategory, 0)
	n, ok := c.Needs.Get(needSlug)
	if !ok {
		return out
	}
	for _, rel := range n.Related {
		if other, ok := c.Needs.Get(rel); ok {
			out = append(out, other)
		}
	}
	return out
}

// TierSummary is one row of the overview's per-tier breakdown.
type TierSummary struct {
	Tier      model.PriceTier `json:"tier"`
	Count     int             `json:"count"`
	Countries int             `json:"countries"`
}

// Overview holds the site-wide numbers shown on the home page.
type Overview struct {
	Version   string             `json:"version"`
	Retreats  int                `json:"retreats"`
	Countries int                `json:"countries"`
	Locations int                `json:"locations"`
	Types     int                `json:"types"`
	Needs     int                `json:"needs"`
	Prices    Stats              `json:"prices"`
	Flags     map[model.Flag]int `json:"flags"`
	Tiers     []TierSummary      `json:"tiers"`
}

// Overview computes the site-wide summary.
func (c *Catalog) Overview() Overview {
	o := Overview{
		Version:   c.version,
		Retreats:  len(c.retreats),
		Countries: DistinctCountries(c.retreats),
		Locations: c.Locations.Len(),
		Types:     c.Types.Len(),
		Needs:     c.Needs.Len(),
		Prices:    PriceStats(c.retreats),
		Flags:     make(map[model.Flag]int, len(model.Flags)),
		Tiers:     make([]TierSummary, 0, len(model.PriceTiers)),
	}
	for _, f := range model.Flags {
		o.Flags[f] = len(c.byFlag[f])
	}
	for _, t := range model.PriceTiers {
		rs := c.ByTier(t.ID)
		o.Tiers = append(o.Tiers, TierSummary{Tier: t, Count: len(rs), Countries: DistinctCountries(rs)})
	}
	return o
}
