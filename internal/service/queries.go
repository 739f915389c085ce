package service

import (
	"context"

	"github.com/fantravel1/cheapretreats-sub001/internal/catalog"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// SortPrice orders listings by ascending price.
const SortPrice = "price"

// RetreatQuery selects retreats. Empty fields do not constrain. Unknown
// values match nothing rather than failing.
type RetreatQuery struct {
	Country string
	Type    string
	Tier    string
	Flags   []string
	Sort    string // "" (definition order) or SortPrice
}

// ListRetreats returns the retreats matching q.
func (s *CatalogService) ListRetreats(ctx context.Context, q RetreatQuery) ([]model.Retreat, error) {
	if q.Sort != "" && q.Sort != SortPrice {
		return nil, ErrInvalidSort
	}
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}

	f := catalog.Filter{Country: q.Country, Type: q.Type, Tier: model.TierID(q.Tier)}
	for _, raw := range q.Flags {
		flag, ok := model.ParseFlag(raw)
		if !ok {
			return []model.Retreat{}, nil
		}
		f.Flags = append(f.Flags, flag)
	}

	out := c.Find(f)
	if q.Sort == SortPrice {
		out = c.SortByPrice(out)
	}
	return out, nil
}

// LocationSummary is a location with its route slug and listing count.
type LocationSummary struct {
	model.Location
	Slug     string `json:"slug"`
	Retreats int    `json:"retreats"`
}

// TypeSummary is a retreat type with its listing count.
type TypeSummary struct {
	model.RetreatType
	Retreats int `json:"retreats"`
}

// ListLocations returns every location in registry order.
func (s *CatalogService) ListLocations(ctx context.Context) ([]LocationSummary, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	return summarizeLocations(c, c.Locations.List()), nil
}

func summarizeLocations(c *catalog.Catalog, locs []model.Location) []LocationSummary {
	out := make([]LocationSummary, len(locs))
	for i, l := range locs {
		out[i] = LocationSummary{
			Location: l,
			Slug:     c.LocationSlug(l.Code),
			Retreats: len(c.ByCountry(l.Code)),
		}
	}
	return out
}

// ListTypes returns every retreat type in registry order.
func (s *CatalogService) ListTypes(ctx context.Context) ([]TypeSummary, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	types := c.Types.List()
	out := make([]TypeSummary, len(types))
	for i, rt := range types {
		out[i] = TypeSummary{RetreatType: rt, Retreats: len(c.ByType(rt.Slug))}
	}
	return out, nil
}

// ListNeeds returns every need category in registry order.
func (s *CatalogService) ListNeeds(ctx context.Context) ([]model.NeedCategory, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	return c.Needs.List(), nil
}

// ListTiers returns the per-tier breakdown in tier order.
func (s *CatalogService) ListTiers(ctx context.Context) ([]catalog.TierSummary, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	return c.Overview().Tiers, nil
}
