package catalog

import (
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// RouteSet lists every slug that needs a pre-rendered page, per facet.
type RouteSet struct {
	Locations []string `json:"locations"`
	Types     []string `json:"types"`
	Needs     []string `json:"needs"`
	Tiers     []string `json:"tiers"`
	Retreats  []string `json:"retreats"`
}

// Path prefixes used by Paths.
const (
	LocationsPath = "/locations/"
	TypesPath     = "/types/"
	NeedsPath     = "/needs/"
	TiersPath     = "/budget/"
	RetreatsPath  = "/retreats/"
)

// Routes enumerates route keys from the registries alone. A location with no
// retreats still gets a route.
func (c *Catalog) Routes() RouteSet {
	tiers := make([]string, len(model.PriceTiers))
	for i, t := range model.PriceTiers {
		tiers[i] = string(t.ID)
	}
	retreats := make([]string, len(c.retreats))
	for i, r := range c.retreats {
		retreats[i] = r.Slug
	}
	return RouteSet{
		Locations: c.Locations.RouteKeys(),
		Types:     c.Types.RouteKeys(),
		Needs:     c.Needs.RouteKeys(),
		Tiers:     tiers,
		Retreats:  retreats,
	}
}

// Paths flattens the set into URL paths, facet by facet.
func (rs RouteSet) Paths() []string {
	n := len(rs.Locations) + len(rs.Types) + len(rs.Needs) + len(rs.Tiers) + len(rs.Retreats)
	out := make([]string, 0, n)
	add := func(prefix string, keys []string) {
		for _, k := range keys {
			out = append(out, prefix+k)
		}
	}
	add(LocationsPath, rs.Locations)
	add(TypesPath, rs.Types)
	add(NeedsPath, rs.Needs)
	add(TiersPath, rs.Tiers)
	add(RetreatsPath, rs.Retreats)
	return out
}
