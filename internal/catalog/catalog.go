package catalog

import (
	"fmt"
	"strings"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
	"github.com/fantravel1/cheapretreats-sub001/internal/slug"
)

// Catalog is the frozen, validated directory content plus its indices.
type Catalog struct {
	version string

	Locations *Registry[model.Location]
	Types     *Registry[model.RetreatType]
	Needs     *Registry[model.NeedCategory]

	retreats  []model.Retreat
	bySlug    map[string]int
	byCountry map[string][]int
	byType    map[string][]int
	byTier    map[model.TierID][]int
	byFlag    map[model.Flag][]int
}

// Build validates defs and returns an immutable catalog. Every integrity
// problem found is returned, joined; on error the catalog is nil. The catalog
// keeps its own copy of defs.
func Build(defs model.Definitions) (*Catalog, error) {
	defs = defs.Clone()
	var p problems

	for i := range defs.Locations {
		l := &defs.Locations[i]
		for _, fe := range l.Validate() {
			p.add("location", keyOr(l.Code, i), fe.Field, fe.Message)
		}
	}
	for i := range defs.Types {
		t := &defs.Types[i]
		for _, fe := range t.Validate() {
			p.add("retreat type", keyOr(t.Slug, i), fe.Field, fe.Message)
		}
		if t.Slug != "" && !slug.IsNormal(t.Slug) {
			p.add("retreat type", t.Slug, "slug", "slug must be lower case words joined by '-'")
		}
	}
	for i := range defs.Needs {
		n := &defs.Needs[i]
		for _, fe := range n.Validate() {
			p.add("need", keyOr(n.Slug, i), fe.Field, fe.Message)
		}
		if n.Slug != "" && !slug.IsNormal(n.Slug) {
			p.add("need", n.Slug, "slug", "slug must be lower case words joined by '-'")
		}
	}

	c := &Catalog{
		Locations: newRegistry("location", defs.Locations,
			func(l model.Location) string { return l.Code },
			func(l model.Location) string { return slug.Make(l.Name) }, &p),
		Types: newRegistry("retreat type", defs.Types,
			func(t model.RetreatType) string { return t.Slug },
			func(t model.RetreatType) string { return t.Slug }, &p),
		Needs: newRegistry("need", defs.Needs,
			func(n model.NeedCategory) string { return n.Slug },
			func(n model.NeedCategory) string { return n.Slug }, &p),
	}
	checkUniqueNames(defs.Locations, &p)

	for _, n := range defs.Needs {
		for _, rel := range n.Related {
			if rel != n.Slug && !c.Needs.Has(rel) {
				p.add("need", n.Slug, "related", "unknown need "+rel)
			}
		}
	}

	c.retreats = make([]model.Retreat, len(defs.Retreats))
	copy(c.retreats, defs.Retreats)
	keys := make([]slug.Key, len(c.retreats))
	for i := range c.retreats {
		r := &c.retreats[i]
		for _, fe := range r.Validate() {
			p.add("retreat", keyOr(r.Name, i), fe.Field, fe.Message)
		}
		if r.Country != "" && !c.Locations.Has(r.Country) {
			p.add("retreat", keyOr(r.Name, i), "country", "unknown location "+r.Country)
		}
		if r.Type != "" && !c.Types.Has(r.Type) {
			p.add("retreat", keyOr(r.Name, i), "type", "unknown retreat type "+r.Type)
		}
		keys[i] = slug.Key{Name: r.Name, Qualifier: r.Country}
	}

	slugs, err := slug.Assign(keys)
	if err != nil {
		p = append(p, fmt.Errorf("%w: retreat slugs: %w", ErrIntegrity, err))
	}
	if err := p.err(); err != nil {
		return nil, err
	}

	for i := range c.retreats {
		c.retreats[i].Slug = slugs[i]
	}
	c.index()

	c.version, err = fingerprint(defs)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// checkUniqueNames rejects two locations with the same display name. Names
// that differ only in case or punctuation are caught by the slug index.
func checkUniqueNames(locs []model.Location, p *problems) {
	seen := make(map[string]string, len(locs))
	for _, l := range locs {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		if other, dup := seen[name]; dup {
			p.add("location", l.Code, "name", "name already used by "+other)
			continue
		}
		seen[name] = l.Code
	}
}

func (c *Catalog) index() {
	c.bySlug = make(map[string]int, len(c.retreats))
	c.byCountry = make(map[string][]int)
	c.byType = make(map[string][]int)
	c.byTier = make(map[model.TierID][]int, len(model.PriceTiers))
	c.byFlag = make(map[model.Flag][]int, len(model.Flags))

	for i, r := range c.retreats {
		c.bySlug[r.Slug] = i
		c.byCountry[r.Country] = append(c.byCountry[r.Country], i)
		if r.Type != "" {
			c.byType[r.Type] = append(c.byType[r.Type], i)
		}
		// Price is validated to [0, MaxPrice], so a tier always exists.
		tier, _ := model.TierForPrice(r.Price)
		c.byTier[tier.ID] = append(c.byTier[tier.ID], i)
		for _, f := range model.Flags {
			if r.HasFlag(f) {
				c.byFlag[f] = append(c.byFlag[f], i)
			}
		}
	}
}

func keyOr(key string, i int) string {
	if key != "" {
		return key
	}
	return fmt.Sprintf("#%d", i)
}

// Version identifies the content the catalog was built from. Two catalogs
// built from equal definitions share a version.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of retreats.
func (c *Catalog) Len() int {
	return len(c.retreats)
}

// All returns every retreat in definition order. Retreats returned by any
// catalog query are deep copies.
func (c *Catalog) All() []model.Retreat {
	out := make([]model.Retreat, len(c.retreats))
	for i, r := range c.retreats {
		out[i] = r.Clone()
	}
	return out
}

// RetreatBySlug resolves a route slug back to its retreat.
func (c *Catalog) RetreatBySlug(s string) (model.Retreat, bool) {
	if i, ok := c.bySlug[s]; ok {
		return c.retreats[i].Clone(), true
	}
	return model.Retreat{}, false
}

// RetreatSlug returns the routable identifier of a retreat from this catalog.
func RetreatSlug(r model.Retreat) string {
	return r.Slug
}

// LocationSlug returns the route slug of the location with the given code,
// or "" if there is none.
func (c *Catalog) LocationSlug(code string) string {
	return c.Locations.routeOf(code)
}

func (c *Catalog) pick(idx []int) []model.Retreat {
	out := make([]model.Retreat, len(idx))
	for i, j := range idx {
		out[i] = c.retreats[j].Clone()
	}
	return out
}
