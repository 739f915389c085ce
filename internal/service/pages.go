package service

import (
	"context"

	"github.com/fantravel1/cheapretreats-sub001/internal/catalog"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// Listing is the part every facet page shares: the matching retreats sorted
// by price and their stats.
type Listing struct {
	Retreats  []model.Retreat `json:"retreats"`
	Stats     catalog.Stats   `json:"stats"`
	Countries int             `json:"countries"`
}

func newListing(c *catalog.Catalog, rs []model.Retreat) Listing {
	return Listing{
		Retreats:  c.SortByPrice(rs),
		Stats:     catalog.PriceStats(rs),
		Countries: catalog.DistinctCountries(rs),
	}
}

// LocationPage backs /locations/{slug}.
type LocationPage struct {
	Location model.Location    `json:"location"`
	Slug     string            `json:"slug"`
	Nearby   []LocationSummary `json:"nearby"`
	Listing
}

// LocationPage resolves a location by route slug.
func (s *CatalogService) LocationPage(ctx context.Context, slug string) (*LocationPage, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	loc, ok := c.Locations.BySlug(slug)
	if !ok {
		return nil, ErrLocationNotFound
	}
	return &LocationPage{
		Location: loc,
		Slug:     slug,
		Nearby:   summarizeLocations(c, c.RelatedLocations(loc.Code)),
		Listing:  newListing(c, c.ByCountry(loc.Code)),
	}, nil
}

// TypePage backs /types/{slug}.
type TypePage struct {
	Type model.RetreatType `json:"type"`
	Listing
}

// TypePage resolves a retreat type by slug.
func (s *CatalogService) TypePage(ctx context.Context, slug string) (*TypePage, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	rt, ok := c.Types.BySlug(slug)
	if !ok {
		return nil, ErrTypeNotFound
	}
	return &TypePage{Type: rt, Listing: newListing(c, c.ByType(rt.Slug))}, nil
}

// TierPage backs /budget/{tier}.
type TierPage struct {
	Tier model.PriceTier `json:"tier"`
	Listing
}

// TierPage resolves a price tier by id.
func (s *CatalogService) TierPage(ctx context.Context, id string) (*TierPage, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	tier, ok := model.LookupTier(model.TierID(id))
	if !ok {
		return nil, ErrTierNotFound
	}
	return &TierPage{Tier: tier, Listing: newListing(c, c.ByTier(tier.ID))}, nil
}

// NeedPage backs /needs/{slug}. Need pages are editorial and carry no
// listing.
type NeedPage struct {
	Need    model.NeedCategory   `json:"need"`
	Related []model.NeedCategory `json:"related"`
}

// NeedPage resolves a need category by slug.
func (s *CatalogService) NeedPage(ctx context.Context, slug string) (*NeedPage, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	n, ok := c.Needs.BySlug(slug)
	if !ok {
		return nil, ErrNeedNotFound
	}
	return &NeedPage{Need: n, Related: c.RelatedNeeds(n.Slug)}, nil
}

// RetreatPage backs /retreats/{slug}.
type RetreatPage struct {
	Retreat      model.Retreat      `json:"retreat"`
	Location     model.Location     `json:"location"`
	LocationSlug string             `json:"location_slug"`
	Type         *model.RetreatType `json:"type,omitempty"`
	Tier         model.PriceTier    `json:"tier"`
	MoreNearby   []model.Retreat    `json:"more_nearby"`
}

// RetreatPage resolves a retreat by slug. MoreNearby lists the other
// retreats in the same country, cheapest first.
func (s *CatalogService) RetreatPage(ctx context.Context, slug string) (*RetreatPage, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := c.RetreatBySlug(slug)
	if !ok {
		return nil, ErrRetreatNotFound
	}

	// Foreign keys and price range are enforced by catalog.Build.
	loc, _ := c.Locations.Get(r.Country)
	tier, _ := model.TierForPrice(r.Price)

	page := &RetreatPage{
		Retreat:      r,
		Location:     loc,
		LocationSlug: c.LocationSlug(r.Country),
		Tier:         tier,
		MoreNearby:   make([]model.Retreat, 0),
	}
	if rt, ok := c.Types.Get(r.Type); ok {
		page.Type = &rt
	}
	for _, other := range c.SortByPrice(c.ByCountry(r.Country)) {
		if other.Slug != r.Slug {
			page.MoreNearby = append(page.MoreNearby, other)
		}
	}
	return page, nil
}
