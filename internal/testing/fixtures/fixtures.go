// Package fixtures provides test data for catalog tests.
//
// Definitions returns a small, valid directory. Factory writes definitions
// into a test database so the SurrealDB source can read them back.
//
// Usage:
//
//	defs := fixtures.Definitions()
//	f := fixtures.New(tdb.DB)
//	f.SeedDefinitions(t, defs)
package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/fantravel1/cheapretreats-sub001/internal/database"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// Factory creates test records in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// ctx returns a context with timeout
func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// Definitions
// ============================================================================

// Definitions returns a small valid directory: two regions with a shared
// retreat name, a free retreat, an uncategorised retreat and a location with
// no retreats.
func Definitions() model.Definitions {
	return model.Definitions{
		Locations: []model.Location{
			{Code: "US", Name: "United States", Region: model.RegionNorthAmerica, Highlights: []string{"Donation-based courses"}},
			{Code: "CA", Name: "Canada", Region: model.RegionNorthAmerica},
			{Code: "PT", Name: "Portugal", Region: model.RegionEurope},
			{Code: "IS", Name: "Iceland", Region: model.RegionEurope},
		},
		Types: []model.RetreatType{
			{Slug: "silent-retreat", Name: "Silent Retreat", Icon: "🤫"},
			{Slug: "yoga-retreat", Name: "Yoga Retreat", Icon: "🧘"},
		},
		Needs: []model.NeedCategory{
			{
				Slug:    "burnout",
				Title:   "Burnout Recovery",
				Related: []string{"quiet"},
				Samples: []model.NeedSample{{Name: "Forest Stay", Place: "Portugal", Price: 0}},
				Theme:   model.Theme{Accent: "#d97706", Icon: "🔥"},
			},
			{Slug: "quiet", Title: "Quiet", Related: []string{"burnout"}},
		},
		Retreats: []model.Retreat{
			{Name: "Zen Center", Country: "US", Price: 450, Type: "silent-retreat", Scholarship: true, Tags: []string{"zen"}},
			{Name: "Zen Center", Country: "CA", Price: 700, Type: "silent-retreat"},
			{Name: "Farm Week", Country: "PT", Price: 0, WorkExchange: true, CommunityRun: true},
			{Name: "Coast Yoga", Country: "PT", Price: 900, Type: "yoga-retreat", SlidingScale: true},
		},
	}
}

// ============================================================================
// Seeding
// ============================================================================

// SeedDefinitions writes defs into the definition tables, one row per entry,
// with ordinal set to the entry's position.
func (f *Factory) SeedDefinitions(t *testing.T, defs model.Definitions) {
	t.Helper()

	for i, l := range defs.Locations {
		f.create(t, "location", i, map[string]interface{}{
			"code":        l.Code,
			"name":        l.Name,
			"region":      string(l.Region),
			"description": optString(l.Description),
			"highlights":  optStrings(l.Highlights),
		})
	}
	for i, rt := range defs.Types {
		f.create(t, "retreat_type", i, map[string]interface{}{
			"slug":        rt.Slug,
			"name":        rt.Name,
			"icon":        optString(rt.Icon),
			"description": optString(rt.Description),
		})
	}
	for i, n := range defs.Needs {
		samples := make([]interface{}, len(n.Samples))
		for j, s := range n.Samples {
			samples[j] = compact(map[string]interface{}{
				"name":  s.Name,
				"place": optString(s.Place),
				"price": s.Price,
				"note":  optString(s.Note),
			})
		}
		f.create(t, "need_category", i, map[string]interface{}{
			"slug":           n.Slug,
			"title":          n.Title,
			"headline":       optString(n.Headline),
			"subtitle":       optString(n.Subtitle),
			"description":    optString(n.Description),
			"what_to_expect": optStrings(n.WhatToExpect),
			"who_its_for":    optStrings(n.WhoItsFor),
			"samples":        samples,
			"related":        optStrings(n.Related),
			"theme": compact(map[string]interface{}{
				"accent":   optString(n.Theme.Accent),
				"gradient": optString(n.Theme.Gradient),
				"icon":     optString(n.Theme.Icon),
			}),
		})
	}
	for i, r := range defs.Retreats {
		f.create(t, "retreat", i, map[string]interface{}{
			"name":          r.Name,
			"country":       r.Country,
			"price":         r.Price,
			"scholarship":   r.Scholarship,
			"sliding_scale": r.SlidingScale,
			"work_exchange": r.WorkExchange,
			"community_run": r.CommunityRun,
			"duration":      optString(r.Duration),
			"type":          optString(r.Type),
			"tags":          optStrings(r.Tags),
			"description":   optString(r.Description),
			"website":       optString(r.Website),
		})
	}
}

func (f *Factory) create(t *testing.T, table string, ordinal int, content map[string]interface{}) {
	t.Helper()

	content = compact(content)
	content["ordinal"] = ordinal

	query := "CREATE type::table($tb) CONTENT $content"
	vars := map[string]interface{}{"tb": table, "content": content}
	if err := f.db.Execute(ctx(t), query, vars); err != nil {
		t.Fatalf("fixtures: failed to create %s #%d: %v", table, ordinal, err)
	}
}

// compact drops nil values; SCHEMAFULL option fields accept NONE, not NULL.
func compact(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		if v == nil {
			delete(m, k)
		}
	}
	return m
}

// optString maps "" to nil so optional fields are left unset.
func optString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func optStrings(ss []string) interface{} {
	if len(ss) == 0 {
		return nil
	}
	return ss
}
