package catalog

import (
	"testing"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

func testDefinitions() model.Definitions {
	return model.Definitions{
		Locations: []model.Location{
			{Code: "US", Name: "United States", Region: model.RegionNorthAmerica},
			{Code: "CA", Name: "Canada", Region: model.RegionNorthAmerica},
			{Code: "MX", Name: "Mexico", Region: model.RegionNorthAmerica},
			{Code: "CR", Name: "Costa Rica", Region: model.RegionCentralAmerica},
			{Code: "PT", Name: "Portugal", Region: model.RegionEurope},
			{Code: "NP", Name: "Nepal", Region: model.RegionAsia},
		},
		Types: []model.RetreatType{
			{Slug: "silent-retreat", Name: "Silent Retreat", Icon: "🤫"},
			{Slug: "monastery-stay", Name: "Monastery Stay", Icon: "🏯"},
			{Slug: "yoga-retreat", Name: "Yoga Retreat", Icon: "🧘"},
		},
		Needs: []model.NeedCategory{
			{Slug: "burnout", Title: "Burnout", Related: []string{"quiet", "grief"}},
			{Slug: "grief", Title: "Grief", Related: []string{"burnout"}},
			{Slug: "quiet", Title: "Quiet"},
		},
		Retreats: []model.Retreat{
			{Name: "Spirit Rock", Country: "US", Price: 450, Type: "silent-retreat", Scholarship: true},
			{Name: "Zen Center", Country: "US", Price: 700, Type: "monastery-stay", SlidingScale: true},
			{Name: "Farm Volunteer Week", Country: "PT", Price: 0, WorkExchange: true, CommunityRun: true},
			{Name: "Zen Center", Country: "CA", Price: 500, Type: "monastery-stay"},
			{Name: "Cloud Forest Yoga", Country: "CR", Price: 1000, Type: "yoga-retreat", Scholarship: true},
			{Name: "Kopan Course", Country: "NP", Price: 300, Type: "monastery-stay", CommunityRun: true},
			{Name: "Dharma Bums", Country: "US", Price: 450, SlidingScale: true, WorkExchange: true},
			{Name: "Hermitage Free Stay", Country: "NP", Price: 0},
			{Name: "Lakeside Sit", Country: "CA", Price: 749, Type: "silent-retreat"},
			{Name: "Oaxaca Quiet", Country: "MX", Price: 750},
		},
	}
}

func mustBuild(t *testing.T, defs model.Definitions) *Catalog {
	t.Helper()
	c, err := Build(defs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func slugsOf(rs []model.Retreat) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Slug
	}
	return out
}
